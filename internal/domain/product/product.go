// Package product provides the product and inventory domain model.
package product

import (
	"fmt"
	"strings"
	"time"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// Product represents a sellable item tracked in inventory. SupplierIDs is the
// full set of suppliers the product can be restocked from; updates compare it
// by full content, never by reference.
type Product struct {
	ID          uint
	Name        string
	Description string
	SKU         string
	Price       float64
	Cost        float64
	Stock       int
	MinStock    int
	SupplierIDs []uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new product.
func NewProduct(name, description, sku string, price, cost float64, stock, minStock int, supplierIDs []uint) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if sku = strings.TrimSpace(sku); sku == "" {
		return nil, fmt.Errorf("product SKU is required")
	}
	if price < 0 || cost < 0 {
		return nil, fmt.Errorf("price and cost cannot be negative")
	}
	if stock < 0 || minStock < 0 {
		return nil, fmt.Errorf("stock levels cannot be negative")
	}

	now := biztime.NowUTC()
	return &Product{
		Name:        name,
		Description: description,
		SKU:         sku,
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		MinStock:    minStock,
		SupplierIDs: supplierIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsLowStock reports whether the product is below its minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}

// StockValue returns the inventory value of this product at cost.
func (p *Product) StockValue() float64 {
	return float64(p.Stock) * p.Cost
}
