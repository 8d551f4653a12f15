package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Keyboard", "Mechanical, 87 keys", "KB-87", 89.9, 45.0, 12, 3, []uint{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "Keyboard", p.Name)
	assert.Equal(t, "KB-87", p.SKU)
	assert.False(t, p.IsLowStock())
	assert.InDelta(t, 540.0, p.StockValue(), 0.0001)
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "", "SKU", 1, 1, 0, 0, nil)
	assert.Error(t, err)

	_, err = NewProduct("Name", "", "", 1, 1, 0, 0, nil)
	assert.Error(t, err)

	_, err = NewProduct("Name", "", "SKU", -1, 1, 0, 0, nil)
	assert.Error(t, err)

	_, err = NewProduct("Name", "", "SKU", 1, 1, -5, 0, nil)
	assert.Error(t, err)
}

func TestIsLowStock(t *testing.T) {
	p := &Product{Stock: 2, MinStock: 3}
	assert.True(t, p.IsLowStock())

	p.Stock = 3
	assert.False(t, p.IsLowStock())
}
