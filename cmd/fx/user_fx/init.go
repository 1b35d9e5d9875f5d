package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"machsight/internal/api/controllers"
	"machsight/internal/repositories"
	"machsight/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService, provideUserController)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepositoryInterface) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
