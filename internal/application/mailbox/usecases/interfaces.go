package usecases

import (
	"context"

	"golang.org/x/oauth2"

	"pepperminto/internal/domain/mailbox"
)

// GmailAuthorizer runs the OAuth consent flow for Gmail queues.
type GmailAuthorizer interface {
	AuthURL(mb *mailbox.Mailbox, state string) string
	Exchange(ctx context.Context, mb *mailbox.Mailbox, code string) (*oauth2.Token, error)
}
