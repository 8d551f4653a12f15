package sale

import (
	"context"
	"time"

	"github.com/venda-inc/venda/internal/shared/query"
)

// Repository persists sales and answers report queries.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uint) (*Sale, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Sale, int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error

	// Report aggregates sales between from and to (inclusive bounds in UTC).
	Report(ctx context.Context, from, to time.Time) (*Report, error)
}
