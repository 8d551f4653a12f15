package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// SupplierModel represents the database persistence model for suppliers.
type SupplierModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;index"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:500"`
	TaxID     string `gorm:"size:50;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SupplierModel) TableName() string {
	return constants.TableSuppliers
}
