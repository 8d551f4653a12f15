package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/query"
)

var saleColumns = map[string]string{
	"clientId": "client_id",
	"soldAt":   "sold_at",
}

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &SaleRepository{db: db}
}

// Create persists the sale and decrements stock for every line in one
// transaction. The whole sale fails when any product lacks stock.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range s.Items {
			result := tx.Model(&models.ProductModel{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var pm models.ProductModel
				if err := tx.Select("id").First(&pm, item.ProductID).Error; err != nil {
					if err == gorm.ErrRecordNotFound {
						return product.ErrProductNotFound
					}
					return fmt.Errorf("failed to load product for sale: %w", err)
				}
				return product.ErrInsufficientStock
			}
		}

		model := saleToModel(s)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		s.ID = model.ID
		for i := range model.Items {
			s.Items[i].ID = model.Items[i].ID
			s.Items[i].SaleID = model.ID
		}
		return nil
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model models.SaleModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	return saleToDomain(&model), nil
}

func (r *SaleRepository) List(ctx context.Context, filter query.BaseFilter) ([]*sale.Sale, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.SaleModel{})
	db = applySearch(db, filter, "number")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	var saleModels []models.SaleModel
	err := db.Preload("Items").
		Order(orderClause(filter, saleColumns, "sold_at DESC")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&saleModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]*sale.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleToDomain(&saleModels[i])
	}
	return sales, total, nil
}

func (r *SaleRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	updates, err := mapUpdateColumns(fields, saleColumns)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	var model models.SaleModel
	if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sale.ErrSaleNotFound
		}
		return fmt.Errorf("failed to load sale for update: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&models.SaleModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	return nil
}

// Delete removes the sale and restores the stock it consumed.
func (r *SaleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.SaleModel
		if err := tx.Preload("Items").First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return sale.ErrSaleNotFound
			}
			return fmt.Errorf("failed to load sale for deletion: %w", err)
		}

		for _, item := range model.Items {
			err := tx.Model(&models.ProductModel{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to restore stock: %w", err)
			}
		}

		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete sale items: %w", err)
		}
		if err := tx.Delete(&models.SaleModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete sale: %w", err)
		}
		return nil
	})
}

// Report aggregates sales between from and to: grand totals, per-day totals
// and the best selling products by quantity.
func (r *SaleRepository) Report(ctx context.Context, from, to time.Time) (*sale.Report, error) {
	report := &sale.Report{From: from, To: to}

	type summaryRow struct {
		Count int64
		Total float64
	}
	var summary summaryRow
	err := r.db.WithContext(ctx).Model(&models.SaleModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("sold_at BETWEEN ? AND ?", from, to).
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales summary: %w", err)
	}
	report.SaleCount = summary.Count
	report.GrandTotal = summary.Total

	type dailyRow struct {
		Day   string
		Count int64
		Total float64
	}
	var dailyRows []dailyRow
	err = r.db.WithContext(ctx).Model(&models.SaleModel{}).
		Select("DATE(sold_at) AS day, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("sold_at BETWEEN ? AND ?", from, to).
		Group("DATE(sold_at)").
		Order("day ASC").
		Scan(&dailyRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily sales: %w", err)
	}
	for _, row := range dailyRows {
		day, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			continue
		}
		report.Daily = append(report.Daily, sale.DailyTotal{
			Day:   day,
			Count: row.Count,
			Total: row.Total,
		})
	}

	type productRow struct {
		ProductID uint
		Name      string
		Quantity  int64
		Total     float64
	}
	var productRows []productRow
	err = r.db.WithContext(ctx).Table(models.SaleItemModel{}.TableName()+" AS si").
		Select("si.product_id AS product_id, p.name AS name, SUM(si.quantity) AS quantity, COALESCE(SUM(si.quantity * si.unit_price), 0) AS total").
		Joins("JOIN "+models.SaleModel{}.TableName()+" AS s ON s.id = si.sale_id").
		Joins("JOIN "+models.ProductModel{}.TableName()+" AS p ON p.id = si.product_id").
		Where("s.sold_at BETWEEN ? AND ?", from, to).
		Group("si.product_id, p.name").
		Order("quantity DESC").
		Limit(10).
		Scan(&productRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product sales: %w", err)
	}
	for _, row := range productRows {
		report.TopProducts = append(report.TopProducts, sale.ProductTotal{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Total:     row.Total,
		})
	}

	return report, nil
}

func saleToModel(s *sale.Sale) *models.SaleModel {
	items := make([]models.SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		items[i] = models.SaleItemModel{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &models.SaleModel{
		ID:        s.ID,
		Number:    s.Number,
		ClientID:  s.ClientID,
		UserID:    s.UserID,
		Total:     s.Total,
		SoldAt:    s.SoldAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Items:     items,
	}
}

func saleToDomain(m *models.SaleModel) *sale.Sale {
	items := make([]sale.SaleItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = sale.SaleItem{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &sale.Sale{
		ID:        m.ID,
		Number:    m.Number,
		ClientID:  m.ClientID,
		UserID:    m.UserID,
		Items:     items,
		Total:     m.Total,
		SoldAt:    m.SoldAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
