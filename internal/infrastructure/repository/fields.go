// Package repository implements the domain repositories on GORM.
package repository

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/query"
)

// timeColumns lists datetime columns whose change-set values arrive as RFC3339
// strings after JSON normalization. They must be decoded back to time.Time
// before reaching GORM: MySQL rejects Z-suffixed datetime literals.
var timeColumns = map[string]bool{
	"sold_at": true,
}

// mapUpdateColumns translates API field names from a change set into database
// column updates. Unknown fields are rejected so a partial update can never
// write outside the resource's declared surface. Slice values are stored as
// JSON columns.
func mapUpdateColumns(fields map[string]any, columns map[string]string) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for name, value := range fields {
		column, ok := columns[name]
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown field %q", name))
		}

		if timeColumns[column] {
			raw, ok := value.(string)
			if !ok {
				return nil, errors.NewValidationError(fmt.Sprintf("field %q must be a timestamp", name))
			}
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, errors.NewValidationError(fmt.Sprintf("field %q is not a valid timestamp", name))
			}
			updates[column] = ts.UTC()
			continue
		}

		if value != nil && reflect.TypeOf(value).Kind() == reflect.Slice {
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("failed to encode field %q: %w", name, err)
			}
			updates[column] = datatypes.JSON(raw)
			continue
		}

		updates[column] = value
	}
	return updates, nil
}

// orderClause resolves the filter's sort field through the column allowlist,
// falling back to the given default when the field is unknown or unset.
func orderClause(filter query.BaseFilter, columns map[string]string, fallback string) string {
	column, ok := columns[filter.SortBy]
	if !ok {
		return fallback
	}
	order := "ASC"
	if filter.IsDescending() {
		order = "DESC"
	}
	return column + " " + order
}

// applySearch adds a case-insensitive LIKE across the given columns when the
// filter carries a search term.
func applySearch(db *gorm.DB, filter query.BaseFilter, columns ...string) *gorm.DB {
	if filter.Search == "" || len(columns) == 0 {
		return db
	}

	pattern := "%" + query.Fold(filter.Search) + "%"
	clause := ""
	args := make([]any, 0, len(columns))
	for i, column := range columns {
		if i > 0 {
			clause += " OR "
		}
		clause += "LOWER(" + column + ") LIKE ?"
		args = append(args, pattern)
	}
	return db.Where(clause, args...)
}
