package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/sale/dto"
	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/patch"
)

type UpdateSaleUseCase struct {
	saleRepo   sale.Repository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateSaleUseCase(
	saleRepo sale.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Execute corrects the client or timestamp of a recorded sale. Only fields
// that actually differ are written.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, id uint, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	current, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		if err == sale.ErrSaleNotFound {
			return nil, errors.NewNotFoundError("sale not found")
		}
		uc.logger.Errorw("failed to load sale for update", "error", err, "sale_id", id)
		return nil, err
	}

	if req.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			if err == client.ErrClientNotFound {
				return nil, errors.NewValidationError("unknown client")
			}
			return nil, err
		}
	}

	changed, err := patch.Changed(dto.ToSaleResponse(current), req)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changed) == 0 {
		resp := dto.ToSaleResponse(current)
		return &resp, nil
	}

	if err := uc.saleRepo.UpdateFields(ctx, id, changed); err != nil {
		if err == sale.ErrSaleNotFound {
			return nil, errors.NewNotFoundError("sale not found")
		}
		uc.logger.Errorw("failed to update sale", "error", err, "sale_id", id)
		return nil, err
	}

	updated, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to reload sale after update", "error", err, "sale_id", id)
		return nil, err
	}

	uc.logger.Infow("sale updated", "sale_id", id, "fields", len(changed))
	resp := dto.ToSaleResponse(updated)
	return &resp, nil
}
