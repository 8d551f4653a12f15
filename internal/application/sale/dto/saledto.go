package dto

import (
	"time"

	"github.com/venda-inc/venda/internal/domain/sale"
)

// CreateSaleItemRequest is one line of a new sale. The unit price is taken
// from the product at the time of sale, not from the request.
type CreateSaleItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents a request to record a sale.
type CreateSaleRequest struct {
	ClientID uint                    `json:"clientId" binding:"required"`
	Items    []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSaleRequest carries the correctable fields of a recorded sale. Items
// are immutable once recorded; a wrong sale is deleted and re-entered.
type UpdateSaleRequest struct {
	ClientID *uint      `json:"clientId,omitempty"`
	SoldAt   *time.Time `json:"soldAt,omitempty"`
}

// SaleItemResponse is one line of a sale in API responses.
type SaleItemResponse struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID       uint               `json:"id"`
	Number   string             `json:"number"`
	ClientID uint               `json:"clientId"`
	UserID   uint               `json:"userId"`
	Items    []SaleItemResponse `json:"items"`
	Total    float64            `json:"total"`
	SoldAt   time.Time          `json:"soldAt"`
}

// ToSaleResponse maps a domain sale to its response shape.
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		}
	}
	return SaleResponse{
		ID:       s.ID,
		Number:   s.Number,
		ClientID: s.ClientID,
		UserID:   s.UserID,
		Items:    items,
		Total:    s.Total,
		SoldAt:   s.SoldAt,
	}
}
