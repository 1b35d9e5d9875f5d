package analysis_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"machsight/internal/api/controllers"
	"machsight/internal/config"
	"machsight/internal/gateway"
	"machsight/internal/repositories"
	"machsight/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideGatewayClient, provideAnalysisService, provideAnalysisController),
	fx.Invoke(registerGatewayHooks),
)

func provideGatewayClient(cfg *config.Config) gateway.Client {
	client, err := gateway.NewClient(cfg.AI)
	if err != nil {
		log.Fatalf("Error initializing analysis gateway: %v", err)
	}
	return client
}

func provideAnalysisService(
	users services.UserServiceInterface,
	machines repositories.MachineRepositoryInterface,
	reports repositories.ReportRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	client gateway.Client,
) services.AnalysisServiceInterface {
	return services.NewAnalysisService(users, machines, reports, userRepo, client)
}

func provideAnalysisController(analysisService services.AnalysisServiceInterface) *controllers.AnalysisController {
	return controllers.NewAnalysisController(analysisService)
}

func registerGatewayHooks(lc fx.Lifecycle, client gateway.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
