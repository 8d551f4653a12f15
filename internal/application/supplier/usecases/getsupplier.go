package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/supplier/dto"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type GetSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewGetSupplierUseCase(supplierRepo supplier.Repository, logger logger.Interface) *GetSupplierUseCase {
	return &GetSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *GetSupplierUseCase) Execute(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	s, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if err == supplier.ErrSupplierNotFound {
			return nil, errors.NewNotFoundError("supplier not found")
		}
		uc.logger.Errorw("failed to get supplier", "error", err, "supplier_id", id)
		return nil, err
	}

	resp := dto.ToSupplierResponse(s)
	return &resp, nil
}
