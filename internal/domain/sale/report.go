package sale

import "time"

// DailyTotal is one row of the sales report aggregation.
type DailyTotal struct {
	Day   time.Time
	Count int64
	Total float64
}

// ProductTotal ranks a product by quantity sold over a report range.
type ProductTotal struct {
	ProductID uint
	Name      string
	Quantity  int64
	Total     float64
}

// Report is the sales report over a date range.
type Report struct {
	From        time.Time
	To          time.Time
	SaleCount   int64
	GrandTotal  float64
	Daily       []DailyTotal
	TopProducts []ProductTotal
}
