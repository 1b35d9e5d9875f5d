package machine_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"machsight/internal/api/controllers"
	"machsight/internal/repositories"
	"machsight/internal/services"
)

var Module = fx.Provide(
	provideMachineRepo, provideMachineService, provideMachineController)

func provideMachineRepo(db *gorm.DB) repositories.MachineRepositoryInterface {
	return repositories.NewMachineRepository(db)
}

func provideMachineService(machineRepo repositories.MachineRepositoryInterface) services.MachineServiceInterface {
	return services.NewMachineService(machineRepo)
}

func provideMachineController(machineService services.MachineServiceInterface) *controllers.MachineController {
	return controllers.NewMachineController(machineService)
}
