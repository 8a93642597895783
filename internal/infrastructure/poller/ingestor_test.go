package poller

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketusecases "pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/infrastructure/email"
	"pepperminto/internal/shared/logger"
)

type mockMailboxRepository struct {
	SaveFunc       func(ctx context.Context, m *mailbox.Mailbox) error
	UpdateFunc     func(ctx context.Context, m *mailbox.Mailbox) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*mailbox.Mailbox, error)
	FindAllFunc    func(ctx context.Context) ([]*mailbox.Mailbox, error)
	FindActiveFunc func(ctx context.Context) ([]*mailbox.Mailbox, error)
}

func (m *mockMailboxRepository) Save(ctx context.Context, mb *mailbox.Mailbox) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, mb)
	}
	return nil
}

func (m *mockMailboxRepository) Update(ctx context.Context, mb *mailbox.Mailbox) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mb)
	}
	return nil
}

func (m *mockMailboxRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMailboxRepository) FindByID(ctx context.Context, id uint) (*mailbox.Mailbox, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMailboxRepository) FindAll(ctx context.Context) ([]*mailbox.Mailbox, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMailboxRepository) FindActive(ctx context.Context) ([]*mailbox.Mailbox, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

type mockIngestExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.IngestEmailCommand) (*ticketusecases.IngestEmailResult, error)
}

func (m *mockIngestExecutor) Execute(ctx context.Context, cmd ticketusecases.IngestEmailCommand) (*ticketusecases.IngestEmailResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &ticketusecases.IngestEmailResult{Created: true}, nil
}

type fakeFetcher struct {
	messages []email.Message
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, mb *mailbox.Mailbox) ([]email.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

type fakeMarkingFetcher struct {
	fakeFetcher
	marked []string
}

func (f *fakeMarkingFetcher) MarkProcessed(ctx context.Context, mb *mailbox.Mailbox, ref string) error {
	f.marked = append(f.marked, ref)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func testIMAPMailbox(t *testing.T, id uint, name string) *mailbox.Mailbox {
	mb, err := mailbox.NewIMAPMailbox(name, "u", "p", "imap.example.com", true)
	require.NoError(t, err)
	require.NoError(t, mb.SetID(id))
	return mb
}

func testGmailMailbox(t *testing.T, id uint, name string) *mailbox.Mailbox {
	mb, err := mailbox.NewGmailMailbox(name, "client-id", "client-secret", "uri")
	require.NoError(t, err)
	require.NoError(t, mb.Authorize("access", "refresh", time.Now().Add(time.Hour)))
	require.NoError(t, mb.SetID(id))
	return mb
}

func imapMessage(uid uint32, messageID string) email.Message {
	return email.Message{
		UID:       uid,
		MessageID: messageID,
		FromName:  "Sender",
		FromEmail: "sender@example.com",
		Subject:   "Subject " + messageID,
		Body:      "body",
	}
}

func TestIngestor_Run_CreatesTicketsAndAdvancesCursor(t *testing.T) {
	mb := testIMAPMailbox(t, 1, "support")
	var persisted uint32
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{mb}, nil
		},
		UpdateFunc: func(ctx context.Context, m *mailbox.Mailbox) error {
			persisted = m.LastSeenUID()
			return nil
		},
	}
	fetcher := &fakeFetcher{messages: []email.Message{
		imapMessage(11, "<m-11@example.com>"),
		imapMessage(12, "<m-12@example.com>"),
	}}

	ing := NewIngestor(repo, &mockIngestExecutor{}, fetcher, &fakeFetcher{}, time.Second, &mockLogger{})
	created, err := ing.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, uint32(12), mb.LastSeenUID())
	assert.Equal(t, uint32(12), persisted)
}

func TestIngestor_Run_MissingMessageIDGetsStableFallback(t *testing.T) {
	mb := testIMAPMailbox(t, 3, "support")
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{mb}, nil
		},
	}
	fetcher := &fakeFetcher{messages: []email.Message{
		{UID: 5, FromEmail: "spam@example.com", Subject: "no message id"},
	}}
	var ingested []string
	ingest := &mockIngestExecutor{
		ExecuteFunc: func(ctx context.Context, cmd ticketusecases.IngestEmailCommand) (*ticketusecases.IngestEmailResult, error) {
			ingested = append(ingested, cmd.MessageID)
			return &ticketusecases.IngestEmailResult{Created: true}, nil
		},
	}

	ing := NewIngestor(repo, ingest, fetcher, &fakeFetcher{}, time.Second, &mockLogger{})
	created, err := ing.Run(context.Background())

	// The synthesized id keeps the message ingestable and the cursor moving.
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"imap-3-5"}, ingested)
	assert.Equal(t, uint32(5), mb.LastSeenUID())
}

func TestIngestor_Run_DuplicateStillAdvancesCursor(t *testing.T) {
	mb := testIMAPMailbox(t, 1, "support")
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{mb}, nil
		},
	}
	fetcher := &fakeFetcher{messages: []email.Message{imapMessage(20, "<dup@example.com>")}}
	ingest := &mockIngestExecutor{
		ExecuteFunc: func(ctx context.Context, cmd ticketusecases.IngestEmailCommand) (*ticketusecases.IngestEmailResult, error) {
			return &ticketusecases.IngestEmailResult{Created: false}, nil
		},
	}

	ing := NewIngestor(repo, ingest, fetcher, &fakeFetcher{}, time.Second, &mockLogger{})
	created, err := ing.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, uint32(20), mb.LastSeenUID())
}

func TestIngestor_Run_StopsAtFirstFailedMessage(t *testing.T) {
	mb := testIMAPMailbox(t, 1, "support")
	var persisted uint32
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{mb}, nil
		},
		UpdateFunc: func(ctx context.Context, m *mailbox.Mailbox) error {
			persisted = m.LastSeenUID()
			return nil
		},
	}
	fetcher := &fakeFetcher{messages: []email.Message{
		imapMessage(31, "<ok@example.com>"),
		imapMessage(32, "<broken@example.com>"),
		imapMessage(33, "<never-reached@example.com>"),
	}}
	var seen []string
	ingest := &mockIngestExecutor{
		ExecuteFunc: func(ctx context.Context, cmd ticketusecases.IngestEmailCommand) (*ticketusecases.IngestEmailResult, error) {
			seen = append(seen, cmd.MessageID)
			if cmd.MessageID == "<broken@example.com>" {
				return nil, fmt.Errorf("database unavailable")
			}
			return &ticketusecases.IngestEmailResult{Created: true}, nil
		},
	}

	ing := NewIngestor(repo, ingest, fetcher, &fakeFetcher{}, time.Second, &mockLogger{})
	created, err := ing.Run(context.Background())

	// The pass itself succeeds; the mailbox failure is recorded as backoff.
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"<ok@example.com>", "<broken@example.com>"}, seen)

	// The cursor stops at the last ingested message so the broken one is
	// retried next pass.
	assert.Equal(t, uint32(31), mb.LastSeenUID())
	assert.Equal(t, uint32(31), persisted)
}

func TestIngestor_Run_FailingMailboxDoesNotStarveOthers(t *testing.T) {
	broken := testIMAPMailbox(t, 1, "broken")
	healthy := testGmailMailbox(t, 2, "healthy-gmail")
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{broken, healthy}, nil
		},
	}
	imapFetcher := &fakeFetcher{err: fmt.Errorf("connection refused")}
	gmailFetcher := &fakeMarkingFetcher{fakeFetcher: fakeFetcher{messages: []email.Message{
		{Ref: "gm-1", MessageID: "<gm-1@example.com>", Subject: "hi", FromEmail: "a@b.com"},
	}}}

	ing := NewIngestor(repo, &mockIngestExecutor{}, imapFetcher, gmailFetcher, time.Second, &mockLogger{})
	created, err := ing.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"gm-1"}, gmailFetcher.marked)
}

func TestIngestor_Run_BackoffSkipsFailingMailbox(t *testing.T) {
	mb := testIMAPMailbox(t, 1, "flaky")
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return []*mailbox.Mailbox{mb}, nil
		},
	}
	fetcher := &fakeFetcher{err: fmt.Errorf("connection refused")}

	ing := NewIngestor(repo, &mockIngestExecutor{}, fetcher, &fakeFetcher{}, time.Second, &mockLogger{})

	_, err := ing.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)

	// The second pass lands inside the cooldown window and must not poll.
	_, err = ing.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestIngestor_Run_RecoverySkipsBackoff(t *testing.T) {
	ing := NewIngestor(&mockMailboxRepository{}, &mockIngestExecutor{}, &fakeFetcher{}, &fakeFetcher{}, time.Second, &mockLogger{})

	ing.recordFailure(1)
	assert.True(t, ing.inCooldown(1))

	ing.clearBackoff(1)
	assert.False(t, ing.inCooldown(1))
}

func TestIngestor_Run_ListFailure(t *testing.T) {
	repo := &mockMailboxRepository{
		FindActiveFunc: func(ctx context.Context) ([]*mailbox.Mailbox, error) {
			return nil, fmt.Errorf("database unavailable")
		},
	}

	ing := NewIngestor(repo, &mockIngestExecutor{}, &fakeFetcher{}, &fakeFetcher{}, time.Second, &mockLogger{})
	_, err := ing.Run(context.Background())
	assert.Error(t, err)
}
