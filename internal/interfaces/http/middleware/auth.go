package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/infrastructure/auth"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

// publicPaths are served without a bearer token.
var publicPaths = map[string]struct{}{
	"/":                            {},
	"/api/v1/auth/login":           {},
	"/api/v1/auth/sso/login":       {},
	"/api/v1/auth/sso/callback":    {},
	"/api/v1/ticket/public/create": {},
	"/api/v1/email-queue/oauth/gmail": {},
}

var publicPrefixes = []string{
	"/docs",
	"/api/v1/knowledge-base/public",
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth guards every route except the public allow-list. It is
// installed on the engine so new routes are authenticated by default.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Set(constants.ContextKeyIsAdmin, claims.Admin)

		c.Next()
	}
}

func isPublicPath(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
