package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// RoleModel represents the database persistence model for roles.
type RoleModel struct {
	ID          uint                        `gorm:"primarykey"`
	Name        string                      `gorm:"uniqueIndex;not null;size:50"`
	Permissions datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return constants.TableRoles
}
