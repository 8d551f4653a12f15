package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type DeleteSaleUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewDeleteSaleUseCase(saleRepo sale.Repository, logger logger.Interface) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Execute voids a sale and restores the stock it consumed.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		if err == sale.ErrSaleNotFound {
			return errors.NewNotFoundError("sale not found")
		}
		uc.logger.Errorw("failed to delete sale", "error", err, "sale_id", id)
		return err
	}

	uc.logger.Infow("sale deleted", "sale_id", id)
	return nil
}
