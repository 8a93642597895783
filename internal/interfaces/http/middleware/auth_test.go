package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pepperminto/internal/infrastructure/auth"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func setupAuthRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService, &mockLogger{}).RequireAuth())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/", ok)
	router.POST("/api/v1/auth/login", ok)
	router.POST("/api/v1/ticket/public/create", ok)
	router.GET("/api/v1/knowledge-base/public/articles/reset-password", ok)
	router.GET("/docs/index.html", ok)
	router.GET("/api/v1/ticket", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint(constants.ContextKeyUserID),
			"email":    c.GetString(constants.ContextKeyUserEmail),
			"is_admin": c.GetBool(constants.ContextKeyIsAdmin),
		})
	})

	return router
}

func TestAuthMiddleware_PublicRoutes(t *testing.T) {
	router := setupAuthRouter(t, auth.NewJWTService("test-secret", 1))

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"root", http.MethodGet, "/"},
		{"login", http.MethodPost, "/api/v1/auth/login"},
		{"public ticket intake", http.MethodPost, "/api/v1/ticket/public/create"},
		{"public knowledge base prefix", http.MethodGet, "/api/v1/knowledge-base/public/articles/reset-password"},
		{"docs prefix", http.MethodGet, "/docs/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAuthMiddleware_RejectsBadCredentials(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	router := setupAuthRouter(t, jwtService)

	foreignToken, _, err := auth.NewJWTService("other-secret", 1).Generate(1, "a@b.com", false)
	require.NoError(t, err)

	expiredToken, _, err := auth.NewJWTService("test-secret", -1).Generate(1, "a@b.com", false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "missing authorization token"},
		{"not a bearer token", "Basic dXNlcjpwYXNz", "invalid authorization header format"},
		{"no scheme", "just-a-token", "invalid authorization header format"},
		{"garbage token", "Bearer not.a.jwt", "invalid or expired token"},
		{"wrong signing key", "Bearer " + foreignToken, "invalid or expired token"},
		{"expired token", "Bearer " + expiredToken, "invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ticket", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestAuthMiddleware_ValidTokenSetsContext(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	router := setupAuthRouter(t, jwtService)

	token, _, err := jwtService.Generate(42, "agent@example.com", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ticket", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"email":"agent@example.com","is_admin":true}`, w.Body.String())
}
