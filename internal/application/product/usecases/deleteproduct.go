package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type DeleteProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(productRepo product.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		if err == product.ErrProductNotFound {
			return errors.NewNotFoundError("product not found")
		}
		uc.logger.Errorw("failed to delete product", "error", err, "product_id", id)
		return err
	}

	uc.logger.Infow("product deleted", "product_id", id)
	return nil
}
