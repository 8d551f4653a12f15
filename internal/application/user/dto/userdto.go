package dto

import (
	"time"

	"github.com/venda-inc/venda/internal/domain/user"
)

// CreateUserRequest represents a request to create a user account.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=3"`
	RoleIDs  []uint `json:"roleIds" binding:"required,min=1"`
}

// UpdateUserRequest carries only the fields the caller wants to change.
// Passwords change through a dedicated flow, never through a partial update.
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	RoleIDs []uint  `json:"roleIds,omitempty"`
}

// RoleResponse is the canonical role shape returned to clients.
type RoleResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Status    string         `json:"status"`
	RoleIDs   []uint         `json:"roleIds"`
	Roles     []RoleResponse `json:"roles,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ToUserResponse maps a domain user to its response shape.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		RoleIDs:   u.RoleIDs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponseWithRoles attaches resolved roles to the response.
func ToUserResponseWithRoles(u *user.User, roles []user.Role) UserResponse {
	resp := ToUserResponse(u)
	resp.Roles = make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp.Roles[i] = RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Permissions: r.Permissions,
		}
	}
	return resp
}
