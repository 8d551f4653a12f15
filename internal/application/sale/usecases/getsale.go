package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/sale/dto"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type GetSaleUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewGetSaleUseCase(saleRepo sale.Repository, logger logger.Interface) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *GetSaleUseCase) Execute(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		if err == sale.ErrSaleNotFound {
			return nil, errors.NewNotFoundError("sale not found")
		}
		uc.logger.Errorw("failed to get sale", "error", err, "sale_id", id)
		return nil, err
	}

	resp := dto.ToSaleResponse(s)
	return &resp, nil
}
