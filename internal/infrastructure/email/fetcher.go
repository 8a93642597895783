package email

import (
	"context"

	"pepperminto/internal/domain/mailbox"
)

// Message is a single email pulled from a mailbox, reduced to the fields the
// ticket pipeline needs.
type Message struct {
	// UID is the IMAP UID of the message. Zero for providers without UIDs.
	UID uint32
	// Ref is the provider-specific message reference, used to mark a
	// message processed after its ticket is created.
	Ref string
	// MessageID is the globally unique Message-ID header value.
	MessageID string
	FromName  string
	FromEmail string
	Subject   string
	Body      string
}

// Fetcher pulls unprocessed messages from a mailbox. Implementations must
// honor context cancellation since fetches run inside bounded poll windows.
type Fetcher interface {
	Fetch(ctx context.Context, mb *mailbox.Mailbox) ([]Message, error)
}

// ProcessedMarker is implemented by fetchers whose provider tracks processed
// state remotely instead of through mailbox UID cursors.
type ProcessedMarker interface {
	MarkProcessed(ctx context.Context, mb *mailbox.Mailbox, ref string) error
}
