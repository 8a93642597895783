package mailbox

import "context"

type MailboxRepository interface {
	Save(ctx context.Context, m *Mailbox) error
	Update(ctx context.Context, m *Mailbox) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Mailbox, error)
	FindAll(ctx context.Context) ([]*Mailbox, error)
	FindActive(ctx context.Context) ([]*Mailbox, error)
}
