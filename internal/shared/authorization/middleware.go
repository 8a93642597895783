package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/utils"
)

// RequireAdmin rejects requests whose authenticated user does not carry the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyIsAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
