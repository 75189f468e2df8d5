package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pingufin/fxdesk/internal/apperrors"
)

// UserRole is the closed set of roles in the system. Authorization decisions
// are expressed as predicates over the role in the services that own them,
// not as behavior on the user type.
type UserRole string

const (
	RoleConsultant UserRole = "CONSULTANT"
	RoleAdmin      UserRole = "ADMIN"
)

// ParseUserRole resolves a role from its wire representation.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleConsultant:
		return RoleConsultant, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown user role %q", apperrors.ErrValidation, s)
	}
}

// User is an identity known to the desk: a consultant recording conversions or
// an administrator curating rate versions and reverting transactions.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser constructs a user with a fresh unique id. The password must already
// be digested by the authentication service.
func NewUser(username, passwordHash string, role UserRole) User {
	return User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}
