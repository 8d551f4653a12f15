package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/product/dto"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if err == product.ErrProductNotFound {
			return nil, errors.NewNotFoundError("product not found")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", id)
		return nil, err
	}

	resp := dto.ToProductResponse(p)
	return &resp, nil
}
