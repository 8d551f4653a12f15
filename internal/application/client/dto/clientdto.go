package dto

import (
	"time"

	"github.com/venda-inc/venda/internal/domain/client"
)

// CreateClientRequest represents a request to create a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateClientRequest carries only the fields the caller wants to change.
// Absent fields are never compared and never written.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// ClientResponse represents a client in API responses. Its JSON field names
// are the canonical names used when computing field-level changes.
type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToClientResponse maps a domain client to its response shape.
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
