package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
)

func ingestCommand() IngestEmailCommand {
	return IngestEmailCommand{
		QueueName: "support-inbox",
		MessageID: "<msg-1@mail.example.com>",
		FromName:  "Max Mustermann",
		FromEmail: "max@example.com",
		Subject:   "Printer is broken",
		Body:      "Paper jam on tray two.",
	}
}

func TestIngestEmailUseCase_Execute_CreatesTicket(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			if err := tk.SetID(70); err != nil {
				return err
			}
			saved = tk
			return nil
		},
	}

	useCase := NewIngestEmailUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ingestCommand())

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, uint(70), result.TicketID)

	require.NotNil(t, saved)
	assert.Equal(t, "Printer is broken", saved.Title())
	assert.Equal(t, "support-inbox", saved.FromEmailQueue())
	assert.Equal(t, "<msg-1@mail.example.com>", saved.SourceMessageID())
	assert.Equal(t, vo.PriorityMedium, saved.Priority())
	assert.Equal(t, vo.TypeSupport, saved.Type())
}

func TestIngestEmailUseCase_Execute_EmptySubjectGetsPlaceholder(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			_ = tk.SetID(71)
			saved = tk
			return nil
		},
	}

	cmd := ingestCommand()
	cmd.Subject = ""

	useCase := NewIngestEmailUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "(no subject)", saved.Title())
}

func TestIngestEmailUseCase_Execute_SkipsSeenMessage(t *testing.T) {
	mockRepo := &mockTicketRepository{
		ExistsBySourceMessageIDFunc: func(ctx context.Context, messageID string) (bool, error) {
			return true, nil
		},
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("save should not be called for an already-ingested message")
			return nil
		},
	}

	useCase := NewIngestEmailUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ingestCommand())

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Zero(t, result.TicketID)
}

func TestIngestEmailUseCase_Execute_ConcurrentDuplicateIsSkip(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return fmt.Errorf("Error 1062: Duplicate entry '<msg-1@mail.example.com>' for key 'idx_source_message_id'")
		},
	}

	useCase := NewIngestEmailUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ingestCommand())

	require.NoError(t, err)
	assert.False(t, result.Created)
}

func TestIngestEmailUseCase_Execute_ValidationErrors(t *testing.T) {
	useCase := NewIngestEmailUseCase(&mockTicketRepository{}, &mockLogger{})

	cmd := ingestCommand()
	cmd.QueueName = ""
	_, err := useCase.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	cmd = ingestCommand()
	cmd.MessageID = ""
	_, err = useCase.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestIngestEmailUseCase_Execute_LookupFailure(t *testing.T) {
	mockRepo := &mockTicketRepository{
		ExistsBySourceMessageIDFunc: func(ctx context.Context, messageID string) (bool, error) {
			return false, fmt.Errorf("connection reset")
		},
	}

	useCase := NewIngestEmailUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ingestCommand())

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
