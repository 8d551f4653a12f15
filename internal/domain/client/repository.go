package client

import (
	"context"

	"github.com/venda-inc/venda/internal/shared/query"
)

// Repository persists clients.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Client, int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}
