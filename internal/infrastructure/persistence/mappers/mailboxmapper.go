package mappers

import (
	"fmt"
	"time"

	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/domain/mailbox/valueobjects"
	"pepperminto/internal/infrastructure/persistence/models"
)

type MailboxMapper interface {
	ToModel(mb *mailbox.Mailbox) *models.MailboxModel
	ToDomain(m *models.MailboxModel) (*mailbox.Mailbox, error)
}

type MailboxMapperImpl struct{}

func NewMailboxMapper() MailboxMapper {
	return &MailboxMapperImpl{}
}

func (mm *MailboxMapperImpl) ToModel(mb *mailbox.Mailbox) *models.MailboxModel {
	var tokenExpiry *int64
	if mb.TokenExpiry() != nil {
		millis := mb.TokenExpiry().UnixMilli()
		tokenExpiry = &millis
	}

	return &models.MailboxModel{
		ID:           mb.ID(),
		Name:         mb.Name(),
		ServiceType:  mb.ServiceType().String(),
		Username:     mb.Username(),
		Password:     mb.Password(),
		Hostname:     mb.Hostname(),
		TLS:          mb.TLS(),
		ClientID:     mb.ClientID(),
		ClientSecret: mb.ClientSecret(),
		RedirectURI:  mb.RedirectURI(),
		AccessToken:  mb.AccessToken(),
		RefreshToken: mb.RefreshToken(),
		TokenExpiry:  tokenExpiry,
		LastSeenUID:  mb.LastSeenUID(),
		Active:       mb.IsActive(),
		CreatedAt:    mb.CreatedAt().UnixMilli(),
		UpdatedAt:    mb.UpdatedAt().UnixMilli(),
	}
}

func (mm *MailboxMapperImpl) ToDomain(m *models.MailboxModel) (*mailbox.Mailbox, error) {
	serviceType, err := valueobjects.NewServiceType(m.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("invalid service type in database: %w", err)
	}

	var tokenExpiry *time.Time
	if m.TokenExpiry != nil {
		expiry := time.UnixMilli(*m.TokenExpiry)
		tokenExpiry = &expiry
	}

	return mailbox.ReconstructMailbox(
		m.ID,
		m.Name,
		serviceType,
		m.Username,
		m.Password,
		m.Hostname,
		m.TLS,
		m.ClientID,
		m.ClientSecret,
		m.RedirectURI,
		m.AccessToken,
		m.RefreshToken,
		tokenExpiry,
		m.LastSeenUID,
		m.Active,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}
