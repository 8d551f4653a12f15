package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientRecord struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type clientChanges struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type productChanges struct {
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	SupplierIDs []uint   `json:"supplier_ids,omitempty"`
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestChangedSingleField(t *testing.T) {
	authoritative := clientRecord{ID: 3, Name: "Ana", Email: "ana@x.com", Phone: "555-0001"}
	proposed := clientChanges{Phone: strPtr("555-0002")}

	changed, err := Changed(authoritative, proposed)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"phone": "555-0002"}, changed)
}

func TestChangedNoDifference(t *testing.T) {
	authoritative := clientRecord{ID: 3, Name: "Ana", Email: "ana@x.com", Phone: "555-0001"}
	proposed := clientChanges{Name: strPtr("Ana"), Phone: strPtr("555-0001")}

	changed, err := Changed(authoritative, proposed)
	require.NoError(t, err)

	assert.Empty(t, changed)
}

func TestChangedIgnoresAbsentFields(t *testing.T) {
	authoritative := clientRecord{ID: 3, Name: "Ana", Email: "ana@x.com"}
	proposed := clientChanges{Email: strPtr("ana@y.com")}

	changed, err := Changed(authoritative, proposed)
	require.NoError(t, err)

	require.Len(t, changed, 1)
	assert.Equal(t, "ana@y.com", changed["email"])
}

func TestChangedNumericComparesByValue(t *testing.T) {
	authoritative := map[string]any{"price": 10.5, "stock": 4}
	proposed := productChanges{Price: floatPtr(10.5), Stock: intPtr(4)}

	changed, err := Changed(authoritative, proposed)
	require.NoError(t, err)

	assert.Empty(t, changed)
}

func TestChangedSliceFullContentEquality(t *testing.T) {
	authoritative := map[string]any{"supplier_ids": []uint{1, 2, 3}}

	same, err := Changed(authoritative, productChanges{SupplierIDs: []uint{1, 2, 3}})
	require.NoError(t, err)
	assert.Empty(t, same)

	reordered, err := Changed(authoritative, productChanges{SupplierIDs: []uint{3, 2, 1}})
	require.NoError(t, err)
	assert.Contains(t, reordered, "supplier_ids")

	extended, err := Changed(authoritative, productChanges{SupplierIDs: []uint{1, 2, 3, 4}})
	require.NoError(t, err)
	assert.Contains(t, extended, "supplier_ids")
}

func TestChangedUnknownFieldIncluded(t *testing.T) {
	authoritative := map[string]any{"name": "Ana"}
	proposed := map[string]any{"nickname": "An"}

	changed, err := Changed(authoritative, proposed)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"nickname": "An"}, changed)
}
