package services_test

import (
	"testing"

	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/pingufin/fxdesk/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestHashPassword_KnownDigest(t *testing.T) {
	svc := services.NewAuthService()

	// sha256("password"), base64-encoded. The digest is part of the stored-data
	// contract; changing it would invalidate every existing credential.
	assert.Equal(t, "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=", svc.HashPassword("password"))
}

func TestHashPassword_Deterministic(t *testing.T) {
	svc := services.NewAuthService()

	assert.Equal(t, svc.HashPassword("s3cret!"), svc.HashPassword("s3cret!"))
	assert.NotEqual(t, svc.HashPassword("s3cret!"), svc.HashPassword("s3cret?"))
}

func TestVerifyPassword(t *testing.T) {
	svc := services.NewAuthService()
	user := domain.NewUser("alice", svc.HashPassword("correct horse"), domain.RoleConsultant)

	assert.True(t, svc.VerifyPassword("correct horse", user))
	assert.False(t, svc.VerifyPassword("wrong horse", user))
	assert.False(t, svc.VerifyPassword("", user))
}

func TestAuthenticate(t *testing.T) {
	svc := services.NewAuthService()
	user := domain.NewUser("alice", svc.HashPassword("correct horse"), domain.RoleConsultant)

	t.Run("unknown user", func(t *testing.T) {
		result := svc.Authenticate(nil, "anything")
		assert.False(t, result.Success)
		assert.Equal(t, "User not found", result.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		result := svc.Authenticate(&user, "wrong horse")
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid password", result.Message)
	})

	t.Run("valid credentials", func(t *testing.T) {
		result := svc.Authenticate(&user, "correct horse")
		assert.True(t, result.Success)
		assert.Equal(t, "Authentication successful", result.Message)
	})
}
