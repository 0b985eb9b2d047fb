package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sauntrix/sauntrix-go/internal/application/services"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/presentation/http/middleware"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

func testLogger() *logging.ChanneledLogger {
	cfg := logging.DefaultLoggerConfig()
	cfg.Output = io.Discard
	return logging.NewChanneledLogger(cfg)
}

func setupAuthRouter(t *testing.T, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	prevHash, prevSecret := config.AdminPasswordHash, config.JWTSecret
	config.AdminPasswordHash = string(hash)
	config.JWTSecret = "test-secret"
	t.Cleanup(func() {
		config.AdminPasswordHash = prevHash
		config.JWTSecret = prevSecret
	})

	authService := services.NewAuthService(testLogger())
	authHandlers := NewAuthHandlers(authService, testLogger())

	r := gin.New()
	r.POST("/login", authHandlers.PostLogin)
	r.POST("/logout", authHandlers.PostLogout)
	r.GET("/status", authHandlers.GetAuthStatus)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(authService))
	admin.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"pong": true}) })

	return r
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := setupAuthRouter(t, "shine-forever")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"shine-forever"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "admin_auth", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupAuthRouter(t, "shine-forever")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminRouteRequiresValidToken(t *testing.T) {
	r := setupAuthRouter(t, "shine-forever")

	// No credentials.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Log in, then replay the cookie.
	loginW := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"shine-forever"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	for _, cookie := range loginW.Result().Cookies() {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRouteAcceptsBearerToken(t *testing.T) {
	r := setupAuthRouter(t, "shine-forever")

	authService := services.NewAuthService(testLogger())
	result := authService.AuthenticateAdmin("shine-forever")
	require.True(t, result.Success)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusReflectsSession(t *testing.T) {
	r := setupAuthRouter(t, "shine-forever")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
