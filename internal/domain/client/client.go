// Package client provides the client (customer) domain model.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// Client represents a customer of the point of sale.
type Client struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new client.
func NewClient(name, email, phone, address string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	now := biztime.NowUTC()
	return &Client{
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
