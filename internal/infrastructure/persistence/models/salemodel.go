package models

import (
	"time"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// SaleModel represents the database persistence model for sales.
type SaleModel struct {
	ID        uint      `gorm:"primarykey"`
	Number    string    `gorm:"uniqueIndex;not null;size:64"`
	ClientID  uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	Total     float64   `gorm:"not null"`
	SoldAt    time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (SaleModel) TableName() string {
	return constants.TableSales
}

// SaleItemModel represents a single line of a sale.
type SaleItemModel struct {
	ID        uint    `gorm:"primarykey"`
	SaleID    uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SaleItemModel) TableName() string {
	return constants.TableSaleItems
}
