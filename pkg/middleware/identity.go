package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"machsight/pkg/utils"
)

// IdentityMiddleware validates the provider-issued bearer token and stashes
// the caller's identity on the context. It does not touch the database; lazy
// user provisioning happens in the user service.
func IdentityMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("identity_claims", claims)
		c.Next()
	}
}

// IdentityFromContext returns the validated claims set by IdentityMiddleware.
func IdentityFromContext(c *gin.Context) (*utils.IdentityClaims, bool) {
	v, ok := c.Get("identity_claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.IdentityClaims)
	return claims, ok
}
