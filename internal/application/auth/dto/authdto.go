package dto

// LoginRequest represents a login attempt. Both fields are validated before
// any credentials are checked so empty submissions never reach the database.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RoleResponse is the canonical role shape returned to clients.
type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LoginResponse is the session payload handed to the client on a successful
// login. Field names follow the wire contract consumed by the POS clients.
type LoginResponse struct {
	ID          uint           `json:"id"`
	Nombre      string         `json:"nombre"`
	Email       string         `json:"email"`
	Roles       []RoleResponse `json:"roles"`
	Token       string         `json:"token"`
	Message     string         `json:"message"`
	Permissions []string       `json:"permissions"`
}
