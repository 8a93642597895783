package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/shared/logger"
)

// GmailFetcher pulls unread inbox messages through the Gmail API. Processed
// messages are marked read instead of tracked by UID cursor.
type GmailFetcher struct {
	logger logger.Interface
}

func NewGmailFetcher() *GmailFetcher {
	return &GmailFetcher{
		logger: logger.NewLogger().With("component", "email.gmail"),
	}
}

func (f *GmailFetcher) Fetch(ctx context.Context, mb *mailbox.Mailbox) ([]Message, error) {
	svc, err := f.service(ctx, mb)
	if err != nil {
		return nil, err
	}

	list, err := svc.Users.Messages.List("me").
		Q("in:inbox is:unread").
		MaxResults(maxMessagesPerFetch).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list gmail messages: %w", err)
	}

	messages := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, err := svc.Users.Messages.Get("me", ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get gmail message %s: %w", ref.Id, err)
		}

		msg := Message{
			Ref:       full.Id,
			MessageID: headerValue(full, "Message-Id"),
			Subject:   headerValue(full, "Subject"),
			Body:      extractBody(full.Payload),
		}
		if msg.MessageID == "" {
			// Fall back to the Gmail message id, which is stable per mailbox.
			msg.MessageID = "gmail-" + full.Id
		}

		from := headerValue(full, "From")
		if addr, err := mail.ParseAddress(from); err == nil {
			msg.FromName = addr.Name
			msg.FromEmail = addr.Address
		} else {
			msg.FromEmail = from
		}

		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkProcessed removes the UNREAD label so the message is not ingested again.
func (f *GmailFetcher) MarkProcessed(ctx context.Context, mb *mailbox.Mailbox, ref string) error {
	svc, err := f.service(ctx, mb)
	if err != nil {
		return err
	}

	_, err = svc.Users.Messages.Modify("me", ref, &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"UNREAD"},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to mark gmail message read: %w", err)
	}

	return nil
}

func (f *GmailFetcher) service(ctx context.Context, mb *mailbox.Mailbox) (*gmail.Service, error) {
	cfg := gmailOAuthConfig(mb)

	token := &oauth2.Token{
		AccessToken:  mb.AccessToken(),
		RefreshToken: mb.RefreshToken(),
		TokenType:    "Bearer",
	}
	if mb.TokenExpiry() != nil {
		token.Expiry = *mb.TokenExpiry()
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return svc, nil
}

func headerValue(msg *gmail.Message, name string) string {
	if msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// extractBody returns the first text/plain part of the message, falling back
// to the top-level body data.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if strings.HasPrefix(payload.MimeType, "text/plain") && payload.Body != nil {
		return decodeBody(payload.Body.Data)
	}

	for _, part := range payload.Parts {
		if body := extractBody(part); body != "" {
			return body
		}
	}

	if payload.Body != nil {
		return decodeBody(payload.Body.Data)
	}
	return ""
}

func decodeBody(data string) string {
	if data == "" {
		return ""
	}
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return strings.TrimSpace(string(decoded))
}
