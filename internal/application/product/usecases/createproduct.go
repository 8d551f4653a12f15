// Package usecases implements the product resource operations.
package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/venda-inc/venda/internal/application/product/dto"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type CreateProductUseCase struct {
	productRepo  product.Repository
	supplierRepo supplier.Repository
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewCreateProductUseCase(
	productRepo product.Repository,
	supplierRepo supplier.Repository,
	sanitizer *bluemonday.Policy,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validateSuppliers(ctx, req.SupplierIDs); err != nil {
		return nil, err
	}

	description := uc.sanitizer.Sanitize(req.Description)
	p, err := product.NewProduct(req.Name, description, req.SKU,
		req.Price, req.Cost, req.Stock, req.MinStock, req.SupplierIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		if err == product.ErrSKUTaken {
			return nil, errors.NewConflictError("SKU already in use")
		}
		uc.logger.Errorw("failed to create product", "error", err)
		return nil, err
	}

	uc.logger.Infow("product created", "product_id", p.ID, "sku", p.SKU)
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

func (uc *CreateProductUseCase) validateSuppliers(ctx context.Context, ids []uint) error {
	return validateSupplierIDs(ctx, uc.supplierRepo, ids)
}

// validateSupplierIDs ensures every referenced supplier exists.
func validateSupplierIDs(ctx context.Context, repo supplier.Repository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	known := make(map[uint]struct{}, len(found))
	for _, s := range found {
		known[s.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return errors.NewValidationError("unknown supplier referenced")
		}
	}
	return nil
}
