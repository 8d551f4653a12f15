package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// ClientModel represents the database persistence model for clients.
type ClientModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;index"`
	Email     string `gorm:"size:255;index"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return constants.TableClients
}
