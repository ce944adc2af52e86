package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"quickbite-client/internal/core/auth"
	resp "quickbite-client/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT requireRole 为空表示只要登录即可。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Unauthorized(c, "Unauthenticated.")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Unauthorized(c, "Unauthenticated.")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Forbidden(c, "This action is unauthorized.")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
