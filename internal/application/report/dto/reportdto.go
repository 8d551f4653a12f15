package dto

import "time"

// SalesReportRequest bounds the report by business-timezone dates.
type SalesReportRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// DailyTotalResponse is one day of the sales report.
type DailyTotalResponse struct {
	Day   string  `json:"day"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// ProductTotalResponse ranks a product by quantity sold.
type ProductTotalResponse struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Total     float64 `json:"total"`
}

// SalesReportResponse is the sales report over a date range.
type SalesReportResponse struct {
	From        time.Time              `json:"from"`
	To          time.Time              `json:"to"`
	SaleCount   int64                  `json:"saleCount"`
	GrandTotal  float64                `json:"grandTotal"`
	Daily       []DailyTotalResponse   `json:"daily"`
	TopProducts []ProductTotalResponse `json:"topProducts"`
}

// InventoryItemResponse is one product line of the inventory report.
type InventoryItemResponse struct {
	ProductID  uint    `json:"productId"`
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Stock      int     `json:"stock"`
	MinStock   int     `json:"minStock"`
	LowStock   bool    `json:"lowStock"`
	StockValue float64 `json:"stockValue"`
}

// InventoryReportResponse summarizes current stock levels and value.
type InventoryReportResponse struct {
	TotalProducts int                     `json:"totalProducts"`
	TotalValue    float64                 `json:"totalValue"`
	LowStockCount int                     `json:"lowStockCount"`
	Items         []InventoryItemResponse `json:"items"`
}
