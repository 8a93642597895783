package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
)

func TestCreatePublicTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			if err := tk.SetID(55); err != nil {
				return err
			}
			saved = tk
			return nil
		},
	}

	useCase := NewCreatePublicTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreatePublicTicketCommand{
		Title:    "Cannot log in",
		Name:     "Visitor",
		Email:    "visitor@example.com",
		Detail:   "Password reset mail never arrives",
		Type:     vo.TypeSupport.String(),
		ClientID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(55), result.TicketID)
	assert.Equal(t, vo.StatusNeedsSupport.String(), result.Status)

	// Bound to the submitting client, default priority, never assigned.
	require.NotNil(t, saved)
	require.NotNil(t, saved.ClientID())
	assert.Equal(t, uint(7), *saved.ClientID())
	assert.Equal(t, vo.PriorityMedium, saved.Priority())
	assert.Nil(t, saved.AssigneeID())
	assert.Nil(t, saved.CreatedByID())
}

func TestCreatePublicTicketUseCase_Execute_KeepsRequestedClassification(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(56)
		},
	}

	useCase := NewCreatePublicTicketUseCase(mockRepo, nil, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreatePublicTicketCommand{
		Title:    "Server is down",
		Email:    "visitor@example.com",
		Type:     vo.TypeIncident.String(),
		Priority: vo.PriorityHigh.String(),
		ClientID: 7,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, vo.TypeIncident, saved.Type())
	assert.Equal(t, vo.PriorityHigh, saved.Priority())
}

func TestCreatePublicTicketUseCase_Execute_SendsReceiptEmail(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(57)
		},
	}
	emailed := make(chan string, 1)
	mockSender := &mockEmailSender{
		SendTicketReceivedEmailFunc: func(to, ticketTitle string) error {
			emailed <- to
			return nil
		},
	}

	useCase := NewCreatePublicTicketUseCase(mockRepo, mockSender, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreatePublicTicketCommand{
		Title:    "Cannot log in",
		Email:    "visitor@example.com",
		Type:     vo.TypeSupport.String(),
		ClientID: 7,
	})
	require.NoError(t, err)

	select {
	case to := <-emailed:
		assert.Equal(t, "visitor@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("receipt email was not sent")
	}
}

func TestCreatePublicTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreatePublicTicketCommand
		expectedError string
	}{
		{
			name:          "missing title",
			command:       CreatePublicTicketCommand{Email: "a@b.com", Type: "support", ClientID: 7},
			expectedError: "title is required",
		},
		{
			name:          "missing email",
			command:       CreatePublicTicketCommand{Title: "Help", Type: "support", ClientID: 7},
			expectedError: "email is required",
		},
		{
			name:          "missing type",
			command:       CreatePublicTicketCommand{Title: "Help", Email: "a@b.com", ClientID: 7},
			expectedError: "invalid ticket type",
		},
		{
			name:          "missing client",
			command:       CreatePublicTicketCommand{Title: "Help", Email: "a@b.com", Type: "support"},
			expectedError: "client ID is required",
		},
		{
			name:          "bogus priority",
			command:       CreatePublicTicketCommand{Title: "Help", Email: "a@b.com", Type: "support", Priority: "asap", ClientID: 7},
			expectedError: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					t.Fatal("rejected submissions must not be saved")
					return nil
				},
			}
			useCase := NewCreatePublicTicketUseCase(mockRepo, nil, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}
