package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/query"
)

var productColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"sku":         "sku",
	"price":       "price",
	"cost":        "cost",
	"stock":       "stock",
	"minStock":    "min_stock",
	"supplierIds": "supplier_ids",
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) product.Repository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	model := productToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return product.ErrSKUTaken
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.ID = model.ID
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return productToDomain(&model), nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by SKU: %w", err)
	}
	return productToDomain(&model), nil
}

func (r *ProductRepository) List(ctx context.Context, filter query.BaseFilter) ([]*product.Product, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.ProductModel{})
	db = applySearch(db, filter, "name", "sku", "description")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var productModels []models.ProductModel
	err := db.Order(orderClause(filter, productColumns, "id ASC")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*product.Product, len(productModels))
	for i := range productModels {
		products[i] = productToDomain(&productModels[i])
	}
	return products, total, nil
}

func (r *ProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	var productModels []models.ProductModel
	err := r.db.WithContext(ctx).
		Where("stock < min_stock").
		Order("stock ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	products := make([]*product.Product, len(productModels))
	for i := range productModels {
		products[i] = productToDomain(&productModels[i])
	}
	return products, nil
}

func (r *ProductRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	updates, err := mapUpdateColumns(fields, productColumns)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	var model models.ProductModel
	if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return product.ErrProductNotFound
		}
		return fmt.Errorf("failed to load product for update: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		if errors.IsDuplicateError(err) {
			return product.ErrSKUTaken
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// AdjustStock changes the stock level atomically. The guard in the WHERE
// clause keeps the level from going negative under concurrent sales.
func (r *ProductRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	db := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("id = ?", id)
	if delta < 0 {
		db = db.Where("stock >= ?", -delta)
	}

	result := db.Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var model models.ProductModel
		if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return product.ErrProductNotFound
			}
			return fmt.Errorf("failed to load product for stock adjustment: %w", err)
		}
		return product.ErrInsufficientStock
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func productToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		SupplierIDs: p.SupplierIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productToDomain(m *models.ProductModel) *product.Product {
	return &product.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		SKU:         m.SKU,
		Price:       m.Price,
		Cost:        m.Cost,
		Stock:       m.Stock,
		MinStock:    m.MinStock,
		SupplierIDs: m.SupplierIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
