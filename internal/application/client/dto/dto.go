package dto

import (
	"time"

	"pepperminto/internal/domain/client"
)

type ClientDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactName   string    `json:"contact_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}

	return &ClientDTO{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactName:   c.ContactName(),
		ContactNumber: c.ContactNumber(),
		Email:         c.Email(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	dtos := make([]*ClientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = ToClientDTO(c)
	}
	return dtos
}
