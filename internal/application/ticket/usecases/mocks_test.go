package usecases

import (
	"context"

	"pepperminto/internal/domain/notification"
	"pepperminto/internal/domain/ticket"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	FindByIDFunc                func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc           func(ctx context.Context) (*ticket.StatusCounts, error)
	ExistsBySourceMessageIDFunc func(ctx context.Context, messageID string) (bool, error)
	DetachClientFunc            func(ctx context.Context, clientID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (*ticket.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return &ticket.StatusCounts{}, nil
}

func (m *mockTicketRepository) ExistsBySourceMessageID(ctx context.Context, messageID string) (bool, error) {
	if m.ExistsBySourceMessageIDFunc != nil {
		return m.ExistsBySourceMessageIDFunc(ctx, messageID)
	}
	return false, nil
}

func (m *mockTicketRepository) DetachClient(ctx context.Context, clientID uint) error {
	if m.DetachClientFunc != nil {
		return m.DetachClientFunc(ctx, clientID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ListAdminsFunc    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

type mockNotificationRepository struct {
	SaveFunc         func(ctx context.Context, n *notification.Notification) error
	UpdateFunc       func(ctx context.Context, n *notification.Notification) error
	FindByIDFunc     func(ctx context.Context, id uint) (*notification.Notification, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) ([]*notification.Notification, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) FindByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockEmailSender struct {
	SendTicketAssignedEmailFunc func(to, ticketTitle string, ticketID uint) error
	SendTicketReceivedEmailFunc func(to, ticketTitle string) error
}

func (m *mockEmailSender) SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error {
	if m.SendTicketAssignedEmailFunc != nil {
		return m.SendTicketAssignedEmailFunc(to, ticketTitle, ticketID)
	}
	return nil
}

func (m *mockEmailSender) SendTicketReceivedEmail(to, ticketTitle string) error {
	if m.SendTicketReceivedEmailFunc != nil {
		return m.SendTicketReceivedEmailFunc(to, ticketTitle)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
