package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/supplier/dto"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/patch"
)

type UpdateSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewUpdateSupplierUseCase(supplierRepo supplier.Repository, logger logger.Interface) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Execute applies a partial update, writing only fields that actually differ
// from the stored record.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	current, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if err == supplier.ErrSupplierNotFound {
			return nil, errors.NewNotFoundError("supplier not found")
		}
		uc.logger.Errorw("failed to load supplier for update", "error", err, "supplier_id", id)
		return nil, err
	}

	changed, err := patch.Changed(dto.ToSupplierResponse(current), req)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changed) == 0 {
		resp := dto.ToSupplierResponse(current)
		return &resp, nil
	}

	if err := uc.supplierRepo.UpdateFields(ctx, id, changed); err != nil {
		if err == supplier.ErrSupplierNotFound {
			return nil, errors.NewNotFoundError("supplier not found")
		}
		uc.logger.Errorw("failed to update supplier", "error", err, "supplier_id", id)
		return nil, err
	}

	updated, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to reload supplier after update", "error", err, "supplier_id", id)
		return nil, err
	}

	uc.logger.Infow("supplier updated", "supplier_id", id, "fields", len(changed))
	resp := dto.ToSupplierResponse(updated)
	return &resp, nil
}
