package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/venda-inc/venda/internal/application/product/dto"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/patch"
)

type UpdateProductUseCase struct {
	productRepo  product.Repository
	supplierRepo supplier.Repository
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewUpdateProductUseCase(
	productRepo product.Repository,
	supplierRepo supplier.Repository,
	sanitizer *bluemonday.Policy,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// Execute applies a partial update. The supplier list is compared by full
// content against the stored list; reordering or extending it counts as a
// change, resending the identical list does not.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if err == product.ErrProductNotFound {
			return nil, errors.NewNotFoundError("product not found")
		}
		uc.logger.Errorw("failed to load product for update", "error", err, "product_id", id)
		return nil, err
	}

	if req.Description != nil {
		sanitized := uc.sanitizer.Sanitize(*req.Description)
		req.Description = &sanitized
	}
	if req.SupplierIDs != nil {
		if err := validateSupplierIDs(ctx, uc.supplierRepo, req.SupplierIDs); err != nil {
			return nil, err
		}
	}

	changed, err := patch.Changed(dto.ToProductResponse(current), req)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changed) == 0 {
		resp := dto.ToProductResponse(current)
		return &resp, nil
	}

	if err := uc.productRepo.UpdateFields(ctx, id, changed); err != nil {
		switch err {
		case product.ErrProductNotFound:
			return nil, errors.NewNotFoundError("product not found")
		case product.ErrSKUTaken:
			return nil, errors.NewConflictError("SKU already in use")
		}
		uc.logger.Errorw("failed to update product", "error", err, "product_id", id)
		return nil, err
	}

	updated, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to reload product after update", "error", err, "product_id", id)
		return nil, err
	}

	uc.logger.Infow("product updated", "product_id", id, "fields", len(changed))
	resp := dto.ToProductResponse(updated)
	return &resp, nil
}
