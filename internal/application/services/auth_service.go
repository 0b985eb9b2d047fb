package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/security"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

// AuthService handles admin authentication and JWT operations. There is a
// single admin credential; fan-facing features never authenticate.
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{logger: logger}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AuthenticateAdmin validates the admin password and generates a JWT.
func (a *AuthService) AuthenticateAdmin(password string) *AuthResult {
	if config.AdminPasswordHash == "" {
		a.logger.Auth().Warn("Admin login attempted with no admin password configured")
		return &AuthResult{Success: false, Error: "Admin access not configured"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
		a.logger.Auth().Warn("Admin login failed")
		return &AuthResult{Success: false, Error: "Invalid credentials"}
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"type": "admin_auth",
		"iat":  time.Now().UTC().Unix(),
		"exp":  time.Now().UTC().Add(config.AuthTokenTTL).Unix(),
	}

	token, err := a.GenerateJWT(claims)
	if err != nil {
		a.logger.Auth().Error("Token generation failed", "error", err.Error())
		return &AuthResult{Success: false, Error: "Token generation failed"}
	}

	a.logger.Auth().Info("Admin login succeeded")
	return &AuthResult{Token: token, Role: "admin", Success: true}
}

// GenerateJWT creates a JWT token with given claims
func (a *AuthService) GenerateJWT(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// ValidateAdminToken checks that a token carries a valid admin session.
func (a *AuthService) ValidateAdminToken(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return false
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "admin_auth" {
		return false
	}

	role, ok := claims["role"].(string)
	return ok && role == "admin"
}
