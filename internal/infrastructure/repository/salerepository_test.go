package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
)

func newSaleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, &models.ProductModel{}, &models.SaleModel{}, &models.SaleItemModel{})
}

func seedSale(t *testing.T, db *gorm.DB, number string, total float64, soldAt time.Time, items ...models.SaleItemModel) uint {
	t.Helper()
	model := models.SaleModel{
		Number:   number,
		ClientID: 1,
		UserID:   1,
		Total:    total,
		SoldAt:   soldAt,
		Items:    items,
	}
	require.NoError(t, db.Create(&model).Error)
	return model.ID
}

func TestSaleRepository_UpdateFieldsParsesSoldAt(t *testing.T) {
	db := newSaleTestDB(t)
	repo := NewSaleRepository(db)

	id := seedSale(t, db, "S-1", 50, time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))

	// The change set carries the timestamp as it came off the wire.
	err := repo.UpdateFields(context.Background(), id, map[string]any{"soldAt": "2026-08-30T13:00:00Z"})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.SoldAt.Equal(time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)),
		"sold_at persists as a real timestamp, got %v", got.SoldAt)
}

func TestSaleRepository_ReportAggregatesRange(t *testing.T) {
	db := newSaleTestDB(t)
	repo := NewSaleRepository(db)

	products := []models.ProductModel{
		{Name: "Café", SKU: "CAFE-250", Price: 50, SupplierIDs: datatypes.JSONSlice[uint]{1}},
		{Name: "Azúcar", SKU: "AZUC-1K", Price: 10, SupplierIDs: datatypes.JSONSlice[uint]{1}},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	seedSale(t, db, "S-1", 100, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		models.SaleItemModel{ProductID: products[0].ID, Quantity: 2, UnitPrice: 50})
	seedSale(t, db, "S-2", 30, time.Date(2026, 8, 2, 16, 30, 0, 0, time.UTC),
		models.SaleItemModel{ProductID: products[1].ID, Quantity: 3, UnitPrice: 10})
	seedSale(t, db, "S-3", 999, time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
		models.SaleItemModel{ProductID: products[0].ID, Quantity: 1, UnitPrice: 999})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	report, err := repo.Report(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.SaleCount, "the sale outside the range is excluded")
	assert.InDelta(t, 130, report.GrandTotal, 0.001)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), report.Daily[0].Day)
	assert.Equal(t, int64(1), report.Daily[0].Count)
	assert.InDelta(t, 100, report.Daily[0].Total, 0.001)
	assert.Equal(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), report.Daily[1].Day)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Azúcar", report.TopProducts[0].Name, "ranked by quantity sold")
	assert.Equal(t, int64(3), report.TopProducts[0].Quantity)
	assert.InDelta(t, 30, report.TopProducts[0].Total, 0.001)
	assert.Equal(t, "Café", report.TopProducts[1].Name)
}
