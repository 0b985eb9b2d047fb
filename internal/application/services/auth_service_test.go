package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sauntrix/sauntrix-go/pkg/config"
)

func withAdminPassword(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	prevHash, prevSecret := config.AdminPasswordHash, config.JWTSecret
	config.AdminPasswordHash = string(hash)
	config.JWTSecret = "test-secret"
	t.Cleanup(func() {
		config.AdminPasswordHash = prevHash
		config.JWTSecret = prevSecret
	})
}

func TestAuthenticateAdminSuccess(t *testing.T) {
	withAdminPassword(t, "shine-forever")
	svc := NewAuthService(newTestLogger())

	result := svc.AuthenticateAdmin("shine-forever")
	require.True(t, result.Success)
	assert.Equal(t, "admin", result.Role)
	assert.NotEmpty(t, result.Token)

	assert.True(t, svc.ValidateAdminToken(result.Token))
}

func TestAuthenticateAdminWrongPassword(t *testing.T) {
	withAdminPassword(t, "shine-forever")
	svc := NewAuthService(newTestLogger())

	result := svc.AuthenticateAdmin("guess")
	assert.False(t, result.Success)
	assert.Empty(t, result.Token)
}

func TestAuthenticateAdminNotConfigured(t *testing.T) {
	prev := config.AdminPasswordHash
	config.AdminPasswordHash = ""
	t.Cleanup(func() { config.AdminPasswordHash = prev })

	svc := NewAuthService(newTestLogger())
	result := svc.AuthenticateAdmin("anything")
	assert.False(t, result.Success)
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	withAdminPassword(t, "shine-forever")
	svc := NewAuthService(newTestLogger())

	assert.False(t, svc.ValidateAdminToken(""))
	assert.False(t, svc.ValidateAdminToken("not-a-jwt"))
}
