package services

import (
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/pingufin/fxdesk/internal/utils"
)

// AuthService implements the password verification contract.
//
// The digest is unsalted, single-round SHA-256 encoded as base64. That is a
// known weakness, kept because the stored hashes are externally observable and
// migrating them is out of scope here. Note also that Authenticate answers
// faster for unknown users than for wrong passwords, a timing side channel
// inherited from the same contract.
type AuthService struct{}

// NewAuthService creates a new AuthService.
func NewAuthService() *AuthService {
	return &AuthService{}
}

// HashPassword produces the deterministic one-way digest of a password.
func (s *AuthService) HashPassword(password string) string {
	return utils.HashPassword(password)
}

// VerifyPassword reports whether the password digests to the user's stored hash.
func (s *AuthService) VerifyPassword(password string, user domain.User) bool {
	return utils.CheckPasswordHash(password, user.PasswordHash)
}

// Authenticate checks credentials against an optionally present user.
func (s *AuthService) Authenticate(user *domain.User, password string) dto.AuthResult {
	if user == nil {
		return dto.AuthResult{Success: false, Message: "User not found"}
	}
	if s.VerifyPassword(password, *user) {
		return dto.AuthResult{Success: true, Message: "Authentication successful"}
	}
	return dto.AuthResult{Success: false, Message: "Invalid password"}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)
