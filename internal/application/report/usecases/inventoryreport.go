package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/report/dto"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

// inventoryReportPageSize bounds each page read while walking the catalog.
const inventoryReportPageSize = 100

type InventoryReportUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewInventoryReportUseCase(productRepo product.Repository, logger logger.Interface) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute walks the whole catalog and summarizes stock levels and value.
func (uc *InventoryReportUseCase) Execute(ctx context.Context) (*dto.InventoryReportResponse, error) {
	resp := &dto.InventoryReportResponse{}

	for page := 1; ; page++ {
		filter := query.NewBaseFilter(query.WithPage(page, inventoryReportPageSize))
		products, total, err := uc.productRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to read products for inventory report", "error", err)
			return nil, err
		}

		for _, p := range products {
			resp.Items = append(resp.Items, dto.InventoryItemResponse{
				ProductID:  p.ID,
				Name:       p.Name,
				SKU:        p.SKU,
				Stock:      p.Stock,
				MinStock:   p.MinStock,
				LowStock:   p.IsLowStock(),
				StockValue: p.StockValue(),
			})
			resp.TotalValue += p.StockValue()
			if p.IsLowStock() {
				resp.LowStockCount++
			}
		}

		resp.TotalProducts = int(total)
		if int64(page*inventoryReportPageSize) >= total || len(products) == 0 {
			break
		}
	}

	return resp, nil
}
