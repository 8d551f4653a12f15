// Package user provides the user aggregate, roles and session lifecycle.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// Status values for a user account.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a system user who can sign in to the administration API.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Status       string
	RoleIDs      []uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// NewUser creates a new active user. The password must already be hashed.
func NewUser(name, email, passwordHash string, roleIDs []uint) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Status:       StatusActive,
		RoleIDs:      roleIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CanLogin reports whether the account may authenticate.
func (u *User) CanLogin() bool {
	return u.Status == StatusActive
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(u.PasswordHash, password)
}

// HasRole reports whether the user is assigned the given role ID.
func (u *User) HasRole(roleID uint) bool {
	for _, id := range u.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// Deactivate marks the user inactive. Inactive users cannot log in; their
// existing sessions are revoked by the caller.
func (u *User) Deactivate() {
	u.Status = StatusInactive
	u.UpdatedAt = biztime.NowUTC()
}

// Activate re-enables a deactivated user.
func (u *User) Activate() {
	u.Status = StatusActive
	u.UpdatedAt = biztime.NowUTC()
}
