package services

import (
	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/pingufin/fxdesk/internal/dto"
)

// AuthSvcFacade is the password verification contract consumed by the login flow.
type AuthSvcFacade interface {
	// HashPassword produces the deterministic one-way digest of a password.
	HashPassword(password string) string

	// VerifyPassword reports whether the password digests to the user's stored hash.
	VerifyPassword(password string, user domain.User) bool

	// Authenticate checks credentials against an optionally present user and
	// returns the outcome with a human-readable message. A nil user yields the
	// "User not found" failure without computing a digest.
	Authenticate(user *domain.User, password string) dto.AuthResult
}
