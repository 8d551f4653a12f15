package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/sale/dto"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type ListSalesResult struct {
	Sales []dto.SaleResponse
	Total int64
}

type ListSalesUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewListSalesUseCase(saleRepo sale.Repository, logger logger.Interface) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *ListSalesUseCase) Execute(ctx context.Context, filter query.BaseFilter) (*ListSalesResult, error) {
	sales, total, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list sales", "error", err)
		return nil, err
	}

	responses := make([]dto.SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = dto.ToSaleResponse(s)
	}
	return &ListSalesResult{Sales: responses, Total: total}, nil
}
