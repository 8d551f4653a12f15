// Package supplier provides the supplier domain model.
package supplier

import (
	"fmt"
	"strings"
	"time"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// Supplier represents a product supplier.
type Supplier struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxID     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSupplier creates a new supplier.
func NewSupplier(name, email, phone, address, taxID string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	now := biztime.NowUTC()
	return &Supplier{
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		TaxID:     strings.TrimSpace(taxID),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
