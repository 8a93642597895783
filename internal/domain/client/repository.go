package client

import "context"

type ListFilter struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ClientRepository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Client, error)
	List(ctx context.Context, filter ListFilter) ([]*Client, int64, error)
}
