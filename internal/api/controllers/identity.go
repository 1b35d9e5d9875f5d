package controllers

import (
	"github.com/gin-gonic/gin"

	"machsight/internal/services"
	"machsight/pkg/middleware"
)

// identityFrom pulls the validated caller identity off the request context.
func identityFrom(c *gin.Context) (services.Identity, bool) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok || claims.Subject == "" {
		return services.Identity{}, false
	}
	return services.Identity{
		Subject:   claims.Subject,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		ImageURL:  claims.Picture,
	}, true
}
