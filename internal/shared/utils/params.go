package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/shared/constants"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/query"
)

// ParseIDParam parses a numeric entity ID from a URL path parameter.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// ParseListFilter builds the shared list filter from query parameters:
// page, page_size, sort_by, sort_order and q (free-text search).
func ParseListFilter(c *gin.Context) query.BaseFilter {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return query.NewBaseFilter(
		query.WithPage(page, pageSize),
		query.WithSort(c.Query("sort_by"), c.Query("sort_order")),
		query.WithSearch(c.Query("q")),
	)
}
