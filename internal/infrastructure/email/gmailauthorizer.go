package email

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"

	"pepperminto/internal/domain/mailbox"
)

// GmailAuthorizer runs the OAuth consent flow for Gmail mailboxes. The state
// parameter carries the mailbox id so the callback can locate the mailbox.
type GmailAuthorizer struct{}

func NewGmailAuthorizer() *GmailAuthorizer {
	return &GmailAuthorizer{}
}

func (a *GmailAuthorizer) AuthURL(mb *mailbox.Mailbox, state string) string {
	cfg := gmailOAuthConfig(mb)
	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (a *GmailAuthorizer) Exchange(ctx context.Context, mb *mailbox.Mailbox, code string) (*oauth2.Token, error) {
	cfg := gmailOAuthConfig(mb)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("authorization response did not include a refresh token")
	}

	return token, nil
}

func gmailOAuthConfig(mb *mailbox.Mailbox) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     mb.ClientID(),
		ClientSecret: mb.ClientSecret(),
		RedirectURL:  mb.RedirectURI(),
		Scopes:       []string{gmail.GmailModifyScope},
		Endpoint:     google.Endpoint,
	}
}
