package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
)

// NewInvalidCredentialsError returns the single generic credentials error.
// The message never distinguishes "user not found" from "wrong password" so
// callers cannot enumerate accounts.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "invalid email or password",
		Code:    http.StatusUnauthorized,
	}
}

// NewSessionExpiredError creates a session expired error.
func NewSessionExpiredError() *AppError {
	return &AppError{
		Type:    ErrorTypeSessionExpired,
		Message: "session expired",
		Code:    http.StatusUnauthorized,
	}
}

// IsInvalidCredentialsError checks if the error is the generic credentials error.
func IsInvalidCredentialsError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidCredentials
}
