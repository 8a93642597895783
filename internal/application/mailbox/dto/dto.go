package dto

import (
	"time"

	"pepperminto/internal/domain/mailbox"
)

// MailboxDTO exposes queue settings without credentials. Passwords, client
// secrets, and OAuth tokens never leave the application layer.
type MailboxDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type"`
	Username    string    `json:"username,omitempty"`
	Hostname    string    `json:"hostname,omitempty"`
	TLS         bool      `json:"tls"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToMailboxDTO(m *mailbox.Mailbox) *MailboxDTO {
	if m == nil {
		return nil
	}

	return &MailboxDTO{
		ID:          m.ID(),
		Name:        m.Name(),
		ServiceType: m.ServiceType().String(),
		Username:    m.Username(),
		Hostname:    m.Hostname(),
		TLS:         m.TLS(),
		Active:      m.IsActive(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func ToMailboxDTOs(mailboxes []*mailbox.Mailbox) []*MailboxDTO {
	dtos := make([]*MailboxDTO, len(mailboxes))
	for i, m := range mailboxes {
		dtos[i] = ToMailboxDTO(m)
	}
	return dtos
}
