package product

import (
	"context"

	"github.com/venda-inc/venda/internal/shared/query"
)

// Repository persists products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Product, int64, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	// AdjustStock atomically changes the stock level by delta (negative for a
	// sale). It fails when the adjustment would drive stock below zero.
	AdjustStock(ctx context.Context, id uint, delta int) error
	Delete(ctx context.Context, id uint) error
}
