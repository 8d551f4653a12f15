package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleComputesTotal(t *testing.T) {
	s, err := NewSale(1, 2, []SaleItem{
		{ProductID: 10, Quantity: 2, UnitPrice: 25.0},
		{ProductID: 11, Quantity: 1, UnitPrice: 99.9},
	})
	require.NoError(t, err)

	assert.InDelta(t, 149.9, s.Total, 0.0001)
	assert.NotEmpty(t, s.Number)
	assert.Equal(t, uint(1), s.ClientID)
	assert.Equal(t, uint(2), s.UserID)
}

func TestNewSaleValidation(t *testing.T) {
	tests := []struct {
		name     string
		clientID uint
		userID   uint
		items    []SaleItem
	}{
		{"missing client", 0, 2, []SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}}},
		{"missing user", 1, 0, []SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}}},
		{"no items", 1, 2, nil},
		{"zero quantity", 1, 2, []SaleItem{{ProductID: 1, Quantity: 0, UnitPrice: 1}}},
		{"negative price", 1, 2, []SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: -1}}},
		{"missing product", 1, 2, []SaleItem{{ProductID: 0, Quantity: 1, UnitPrice: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSale(tt.clientID, tt.userID, tt.items)
			assert.Error(t, err)
		})
	}
}

func TestSaleNumbersAreUnique(t *testing.T) {
	items := []SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: 5}}
	a, err := NewSale(1, 1, items)
	require.NoError(t, err)
	b, err := NewSale(1, 1, items)
	require.NoError(t, err)

	assert.NotEqual(t, a.Number, b.Number)
}
