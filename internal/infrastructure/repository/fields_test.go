package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/venda-inc/venda/internal/shared/errors"
)

func TestMapUpdateColumns_DecodesTimeColumns(t *testing.T) {
	updates, err := mapUpdateColumns(map[string]any{"soldAt": "2026-08-30T13:00:00Z"}, saleColumns)
	require.NoError(t, err)

	ts, ok := updates["sold_at"].(time.Time)
	require.True(t, ok, "datetime columns must reach the driver as time.Time, not raw strings")
	assert.True(t, ts.Equal(time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)))
}

func TestMapUpdateColumns_RejectsInvalidTimestamp(t *testing.T) {
	_, err := mapUpdateColumns(map[string]any{"soldAt": "mañana"}, saleColumns)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestMapUpdateColumns_RejectsUnknownField(t *testing.T) {
	_, err := mapUpdateColumns(map[string]any{"total": 99.0}, saleColumns)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestMapUpdateColumns_EncodesSlicesAsJSON(t *testing.T) {
	updates, err := mapUpdateColumns(map[string]any{"supplierIds": []any{float64(1), float64(2)}}, productColumns)
	require.NoError(t, err)

	raw, ok := updates["supplier_ids"].(datatypes.JSON)
	require.True(t, ok)
	assert.JSONEq(t, "[1,2]", string(raw))
}
