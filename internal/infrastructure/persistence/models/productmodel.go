package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// ProductModel represents the database persistence model for products.
type ProductModel struct {
	ID          uint                      `gorm:"primarykey"`
	Name        string                    `gorm:"not null;size:255;index"`
	Description string                    `gorm:"size:2000"`
	SKU         string                    `gorm:"uniqueIndex;not null;size:100"`
	Price       float64                   `gorm:"not null"`
	Cost        float64                   `gorm:"not null;default:0"`
	Stock       int                       `gorm:"not null;default:0"`
	MinStock    int                       `gorm:"not null;default:0"`
	SupplierIDs datatypes.JSONSlice[uint] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
