// Package poller periodically drains configured mailboxes and converts new
// emails into support tickets.
package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	ticketusecases "pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/infrastructure/email"
	"pepperminto/internal/shared/logger"
)

const (
	initialBackoff = time.Minute
	maxBackoff     = 15 * time.Minute
)

type backoffState struct {
	failures int
	nextTry  time.Time
}

// Ingestor runs one polling pass over all active mailboxes. Each mailbox is
// processed under its own timeout so a stuck server cannot starve the rest.
type Ingestor struct {
	mailboxRepo    mailbox.MailboxRepository
	ingest         ticketusecases.IngestEmailExecutor
	imapFetcher    email.Fetcher
	gmailFetcher   email.Fetcher
	mailboxTimeout time.Duration
	logger         logger.Interface

	mu       sync.Mutex
	backoffs map[uint]backoffState
}

func NewIngestor(
	mailboxRepo mailbox.MailboxRepository,
	ingest ticketusecases.IngestEmailExecutor,
	imapFetcher email.Fetcher,
	gmailFetcher email.Fetcher,
	mailboxTimeout time.Duration,
	log logger.Interface,
) *Ingestor {
	return &Ingestor{
		mailboxRepo:    mailboxRepo,
		ingest:         ingest,
		imapFetcher:    imapFetcher,
		gmailFetcher:   gmailFetcher,
		mailboxTimeout: mailboxTimeout,
		logger:         log,
		backoffs:       make(map[uint]backoffState),
	}
}

// Run polls every active mailbox once and returns the number of tickets
// created. A failing mailbox is logged, put on backoff, and skipped until its
// cooldown expires; it never aborts the pass.
func (i *Ingestor) Run(ctx context.Context) (int, error) {
	mailboxes, err := i.mailboxRepo.FindActive(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, mb := range mailboxes {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		if i.inCooldown(mb.ID()) {
			i.logger.Debugw("mailbox in backoff, skipping", "mailbox", mb.Name())
			continue
		}

		n, err := i.pollMailbox(ctx, mb)
		created += n
		if err != nil {
			i.recordFailure(mb.ID())
			i.logger.Errorw("mailbox poll failed",
				"mailbox", mb.Name(),
				"service_type", mb.ServiceType().String(),
				"error", err,
			)
			continue
		}
		i.clearBackoff(mb.ID())
	}

	return created, nil
}

func (i *Ingestor) pollMailbox(ctx context.Context, mb *mailbox.Mailbox) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, i.mailboxTimeout)
	defer cancel()

	fetcher := i.imapFetcher
	if mb.ServiceType().IsGmail() {
		fetcher = i.gmailFetcher
	}

	messages, err := fetcher.Fetch(ctx, mb)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	marker, _ := fetcher.(email.ProcessedMarker)

	created := 0
	advanced := false
	for _, msg := range messages {
		messageID := msg.MessageID
		if messageID == "" && msg.UID > 0 {
			// A message without a Message-ID header would fail ingestion
			// forever and wedge the cursor. Fall back to mailbox plus UID.
			messageID = fmt.Sprintf("imap-%d-%d", mb.ID(), msg.UID)
		}

		result, err := i.ingest.Execute(ctx, ticketusecases.IngestEmailCommand{
			QueueName: mb.Name(),
			MessageID: messageID,
			FromName:  msg.FromName,
			FromEmail: msg.FromEmail,
			Subject:   msg.Subject,
			Body:      msg.Body,
		})
		if err != nil {
			// Stop at the first failed message so the cursor is not
			// advanced past it; the next pass retries from here.
			if advanced {
				i.persistCursor(ctx, mb)
			}
			return created, err
		}
		if result.Created {
			created++
		}

		// Duplicates advance the cursor too; they are done, not pending.
		if msg.UID > 0 {
			mb.AdvanceLastSeenUID(msg.UID)
			advanced = true
		}
		if marker != nil && msg.Ref != "" {
			if err := marker.MarkProcessed(ctx, mb, msg.Ref); err != nil {
				i.logger.Warnw("failed to mark message processed",
					"mailbox", mb.Name(),
					"ref", msg.Ref,
					"error", err,
				)
			}
		}
	}

	if advanced {
		i.persistCursor(ctx, mb)
	}

	i.logger.Infow("mailbox polled",
		"mailbox", mb.Name(),
		"messages", len(messages),
		"tickets_created", created,
	)
	return created, nil
}

func (i *Ingestor) persistCursor(ctx context.Context, mb *mailbox.Mailbox) {
	if err := i.mailboxRepo.Update(ctx, mb); err != nil {
		i.logger.Errorw("failed to persist mailbox cursor",
			"mailbox", mb.Name(),
			"last_seen_uid", mb.LastSeenUID(),
			"error", err,
		)
	}
}

func (i *Ingestor) inCooldown(id uint) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	state, ok := i.backoffs[id]
	return ok && time.Now().Before(state.nextTry)
}

func (i *Ingestor) recordFailure(id uint) {
	i.mu.Lock()
	defer i.mu.Unlock()

	state := i.backoffs[id]
	state.failures++

	delay := initialBackoff << (state.failures - 1)
	if delay > maxBackoff || delay <= 0 {
		delay = maxBackoff
	}
	state.nextTry = time.Now().Add(delay)
	i.backoffs[id] = state
}

func (i *Ingestor) clearBackoff(id uint) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.backoffs, id)
}
