package mappers

import (
	"time"

	"pepperminto/internal/domain/client"
	"pepperminto/internal/infrastructure/persistence/models"
)

type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(m *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (cm *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactName:   c.ContactName(),
		ContactNumber: c.ContactNumber(),
		Email:         c.Email(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}
}

func (cm *ClientMapperImpl) ToDomain(m *models.ClientModel) (*client.Client, error) {
	return client.ReconstructClient(
		m.ID,
		m.Name,
		m.ContactName,
		m.ContactNumber,
		m.Email,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}
