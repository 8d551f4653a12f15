// Package usecases implements the sale operations.
package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/sale/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type CreateSaleUseCase struct {
	saleRepo    sale.Repository
	productRepo product.Repository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewCreateSaleUseCase(
	saleRepo sale.Repository,
	productRepo product.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// Execute records a sale for the authenticated user. Unit prices are read
// from the products at sale time and stock is decremented atomically with the
// sale; the whole sale is rejected when any line lacks stock.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, userID uint, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if err == client.ErrClientNotFound {
			return nil, errors.NewValidationError("unknown client")
		}
		return nil, err
	}

	items := make([]sale.SaleItem, len(req.Items))
	for i, line := range req.Items {
		p, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			if err == product.ErrProductNotFound {
				return nil, errors.NewValidationError("unknown product referenced")
			}
			return nil, err
		}
		items[i] = sale.SaleItem{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
		}
	}

	s, err := sale.NewSale(req.ClientID, userID, items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.saleRepo.Create(ctx, s); err != nil {
		switch err {
		case product.ErrInsufficientStock:
			return nil, errors.NewConflictError("insufficient stock")
		case product.ErrProductNotFound:
			return nil, errors.NewValidationError("unknown product referenced")
		}
		uc.logger.Errorw("failed to create sale", "error", err)
		return nil, err
	}

	uc.logger.Infow("sale recorded", "sale_id", s.ID, "number", s.Number, "total", s.Total)
	resp := dto.ToSaleResponse(s)
	return &resp, nil
}
