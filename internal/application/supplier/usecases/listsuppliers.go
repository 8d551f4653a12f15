package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/supplier/dto"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type ListSuppliersResult struct {
	Suppliers []dto.SupplierResponse
	Total     int64
}

type ListSuppliersUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewListSuppliersUseCase(supplierRepo supplier.Repository, logger logger.Interface) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *ListSuppliersUseCase) Execute(ctx context.Context, filter query.BaseFilter) (*ListSuppliersResult, error) {
	suppliers, total, err := uc.supplierRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list suppliers", "error", err)
		return nil, err
	}

	responses := make([]dto.SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		responses[i] = dto.ToSupplierResponse(s)
	}
	return &ListSuppliersResult{Suppliers: responses, Total: total}, nil
}
