package sale

import "errors"

var ErrSaleNotFound = errors.New("sale not found")
