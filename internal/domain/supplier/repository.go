package supplier

import (
	"context"

	"github.com/venda-inc/venda/internal/shared/query"
)

// Repository persists suppliers.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, id uint) (*Supplier, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Supplier, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Supplier, int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}
