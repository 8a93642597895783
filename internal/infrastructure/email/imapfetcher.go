package email

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/shared/logger"
)

// maxMessagesPerFetch caps how many messages a single poll pulls from one
// mailbox so a backlogged inbox cannot monopolize the poll window.
const maxMessagesPerFetch = 50

// IMAPFetcher pulls messages over IMAP using the mailbox UID cursor. Only
// messages with a UID above the cursor are fetched.
type IMAPFetcher struct {
	logger logger.Interface
}

func NewIMAPFetcher() *IMAPFetcher {
	return &IMAPFetcher{
		logger: logger.NewLogger().With("component", "email.imap"),
	}
}

func (f *IMAPFetcher) Fetch(ctx context.Context, mb *mailbox.Mailbox) ([]Message, error) {
	client, err := f.dial(mb)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.Login(mb.Username(), mb.Password()).Wait(); err != nil {
		return nil, fmt.Errorf("imap login failed: %w", err)
	}
	defer client.Logout()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		return nil, fmt.Errorf("failed to select inbox: %w", err)
	}

	uids, err := f.searchNewUIDs(client, mb.LastSeenUID())
	if err != nil {
		return nil, err
	}
	if len(uids) == 0 {
		return nil, nil
	}
	if len(uids) > maxMessagesPerFetch {
		uids = uids[:maxMessagesPerFetch]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.fetchMessages(client, mb.ID(), uids)
}

func (f *IMAPFetcher) dial(mb *mailbox.Mailbox) (*imapclient.Client, error) {
	addr := mb.Hostname()
	if _, _, err := net.SplitHostPort(addr); err != nil {
		if mb.TLS() {
			addr = net.JoinHostPort(addr, "993")
		} else {
			addr = net.JoinHostPort(addr, "143")
		}
	}

	var client *imapclient.Client
	var err error
	if mb.TLS() {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialInsecure(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return client, nil
}

func (f *IMAPFetcher) searchNewUIDs(client *imapclient.Client, lastSeen uint32) ([]imap.UID, error) {
	criteria := &imap.SearchCriteria{
		UID: []imap.UIDSet{
			{imap.UIDRange{Start: imap.UID(lastSeen + 1), Stop: 0}},
		},
	}

	data, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("uid search failed: %w", err)
	}

	uids := data.AllUIDs()

	// Servers return the highest existing UID for an open-ended range even
	// when nothing is new, so filter against the cursor again.
	filtered := uids[:0]
	for _, uid := range uids {
		if uint32(uid) > lastSeen {
			filtered = append(filtered, uid)
		}
	}

	return filtered, nil
}

func (f *IMAPFetcher) fetchMessages(client *imapclient.Client, mailboxID uint, uids []imap.UID) ([]Message, error) {
	uidSet := imap.UIDSetNum(uids...)
	bodySection := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText}
	fetchOptions := &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	buffers, err := client.Fetch(uidSet, fetchOptions).Collect()
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	messages := make([]Message, 0, len(buffers))
	for _, buf := range buffers {
		if buf.Envelope == nil {
			f.logger.Warnw("message without envelope skipped", "uid", uint32(buf.UID))
			continue
		}

		msg := Message{
			UID:       uint32(buf.UID),
			MessageID: buf.Envelope.MessageID,
			Subject:   buf.Envelope.Subject,
			Body:      strings.TrimSpace(string(buf.FindBodySection(bodySection))),
		}
		// Some senders omit the Message-ID header. Synthesize a stable one
		// from the mailbox and UID so ingestion stays idempotent.
		if msg.MessageID == "" {
			msg.MessageID = fmt.Sprintf("imap-%d-%d", mailboxID, msg.UID)
		}
		if len(buf.Envelope.From) > 0 {
			msg.FromName = buf.Envelope.From[0].Name
			msg.FromEmail = buf.Envelope.From[0].Addr()
		}

		messages = append(messages, msg)
	}

	return messages, nil
}
