package client

import (
	"fmt"
	"time"
)

// Client is an organization tickets can be filed against.
type Client struct {
	id            uint
	name          string
	contactName   string
	contactNumber string
	email         string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewClient(name, contactName, contactNumber, email string) (*Client, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}

	now := time.Now()

	return &Client{
		name:          name,
		contactName:   contactName,
		contactNumber: contactNumber,
		email:         email,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructClient(
	id uint,
	name string,
	contactName string,
	contactNumber string,
	email string,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Client{
		id:            id,
		name:          name,
		contactName:   contactName,
		contactNumber: contactNumber,
		email:         email,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) ContactName() string {
	return c.contactName
}

func (c *Client) ContactNumber() string {
	return c.contactNumber
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Client) Update(name, contactName, contactNumber, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	c.name = name
	c.contactName = contactName
	c.contactNumber = contactNumber
	c.email = email
	c.updatedAt = time.Now()

	return nil
}
