package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUTaken          = errors.New("SKU already in use")
	ErrInsufficientStock = errors.New("insufficient stock")
)
