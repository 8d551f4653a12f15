package dto

import (
	"time"

	"github.com/venda-inc/venda/internal/domain/product"
)

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	SKU         string  `json:"sku" binding:"required,min=1,max=100"`
	Price       float64 `json:"price" binding:"min=0"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	MinStock    int     `json:"minStock" binding:"min=0"`
	SupplierIDs []uint  `json:"supplierIds"`
}

// UpdateProductRequest carries only the fields the caller wants to change.
// SupplierIDs is compared by full content: sending the complete new list is
// the only way to change it.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	SKU         *string  `json:"sku,omitempty" binding:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Cost        *float64 `json:"cost,omitempty" binding:"omitempty,min=0"`
	Stock       *int     `json:"stock,omitempty" binding:"omitempty,min=0"`
	MinStock    *int     `json:"minStock,omitempty" binding:"omitempty,min=0"`
	SupplierIDs []uint   `json:"supplierIds,omitempty"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	SupplierIDs []uint    `json:"supplierIds"`
	LowStock    bool      `json:"lowStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToProductResponse maps a domain product to its response shape.
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		SupplierIDs: p.SupplierIDs,
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
