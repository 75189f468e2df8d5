package dto

import "time"

// LoginRequest carries the credentials for password authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// AuthResult is the outcome of an authentication attempt: a success flag plus
// a human-readable message suitable for display.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
