// Package sale provides the sale domain model and reporting types.
package sale

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	ID        uint
	SaleID    uint
	ProductID uint
	Quantity  int
	UnitPrice float64
}

// Subtotal returns the line total.
func (i SaleItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Sale represents a completed sale. Number is an opaque receipt reference
// handed to the client; Total is always derived from the items.
type Sale struct {
	ID        uint
	Number    string
	ClientID  uint
	UserID    uint
	Items     []SaleItem
	Total     float64
	SoldAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSale creates a sale for a client, recorded by the given user.
func NewSale(clientID, userID uint, items []SaleItem) (*Sale, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("a sale needs at least one item")
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("item product ID is required")
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("item unit price cannot be negative")
		}
	}

	now := biztime.NowUTC()
	s := &Sale{
		Number:    uuid.NewString(),
		ClientID:  clientID,
		UserID:    userID,
		Items:     items,
		SoldAt:    now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Total = s.ComputeTotal()
	return s, nil
}

// ComputeTotal sums the item subtotals.
func (s *Sale) ComputeTotal() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}
