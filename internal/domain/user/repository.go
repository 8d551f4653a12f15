package user

import (
	"context"

	"github.com/venda-inc/venda/internal/shared/query"
)

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*User, int64, error)
	Update(ctx context.Context, u *User) error
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// RoleRepository persists roles and their permission codes.
type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Role, error)
	List(ctx context.Context) ([]Role, error)
}

// SessionRepository persists sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}
