// Package usecases implements the supplier resource operations.
package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/supplier/dto"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type CreateSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewCreateSupplierUseCase(supplierRepo supplier.Repository, logger logger.Interface) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *CreateSupplierUseCase) Execute(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := supplier.NewSupplier(req.Name, req.Email, req.Phone, req.Address, req.TaxID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.supplierRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create supplier", "error", err)
		return nil, err
	}

	uc.logger.Infow("supplier created", "supplier_id", s.ID)
	resp := dto.ToSupplierResponse(s)
	return &resp, nil
}
