package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type DeleteSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewDeleteSupplierUseCase(supplierRepo supplier.Repository, logger logger.Interface) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.supplierRepo.Delete(ctx, id); err != nil {
		if err == supplier.ErrSupplierNotFound {
			return errors.NewNotFoundError("supplier not found")
		}
		uc.logger.Errorw("failed to delete supplier", "error", err, "supplier_id", id)
		return err
	}

	uc.logger.Infow("supplier deleted", "supplier_id", id)
	return nil
}
