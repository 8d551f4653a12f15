package models

import (
	"time"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID             string    `gorm:"primarykey;size:64"`
	UserID         uint      `gorm:"not null;index"`
	TokenHash      string    `gorm:"size:255;index"`
	LoginAt        time.Time `gorm:"not null"`
	LastActivityAt time.Time `gorm:"not null"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
