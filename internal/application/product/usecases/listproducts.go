package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/product/dto"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type ListProductsResult struct {
	Products []dto.ProductResponse
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, filter query.BaseFilter) (*ListProductsResult, error) {
	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, err
	}

	responses := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = dto.ToProductResponse(p)
	}
	return &ListProductsResult{Products: responses, Total: total}, nil
}
