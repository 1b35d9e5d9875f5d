package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"machsight/internal/services"
	"machsight/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Me returns the caller's profile, provisioning the user row on first
// contact with the identity provider's subject.
func (u *UserController) Me(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := u.userService.GetProfile(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}
