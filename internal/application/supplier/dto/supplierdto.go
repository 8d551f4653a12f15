package dto

import (
	"time"

	"github.com/venda-inc/venda/internal/domain/supplier"
)

// CreateSupplierRequest represents a request to create a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
	TaxID   string `json:"taxId" binding:"max=50"`
}

// UpdateSupplierRequest carries only the fields the caller wants to change.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=500"`
	TaxID   *string `json:"taxId,omitempty" binding:"omitempty,max=50"`
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	TaxID     string    `json:"taxId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToSupplierResponse maps a domain supplier to its response shape.
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		TaxID:     s.TaxID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
