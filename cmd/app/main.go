package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"machsight/cmd/fx/analysis_fx"
	"machsight/cmd/fx/db_fx"
	"machsight/cmd/fx/machine_fx"
	"machsight/cmd/fx/payment_fx"
	"machsight/cmd/fx/report_fx"
	"machsight/cmd/fx/user_fx"
	"machsight/internal/api/controllers"
	"machsight/internal/config"
	"machsight/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		machine_fx.Module,
		report_fx.Module,
		analysis_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Server.Port)
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	machineController *controllers.MachineController,
	analysisController *controllers.AnalysisController,
	reportController *controllers.ReportController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userController, machineController, analysisController, reportController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	machineController *controllers.MachineController,
	analysisController *controllers.AnalysisController,
	reportController *controllers.ReportController,
	paymentController *controllers.PaymentController) {

	v1 := r.Group("/api/v1")

	// The pricing catalog is readable before sign-in.
	v1.GET("/payments/plans", paymentController.ListPlans)

	authed := v1.Group("")
	authed.Use(middleware.IdentityMiddleware())

	authed.GET("/me", userController.Me)

	authed.POST("/machines", machineController.AddMachine)
	authed.GET("/machines", machineController.ListMachines)

	authed.POST("/analysis", analysisController.Analyze)

	authed.GET("/reports", reportController.ListReports)
	authed.GET("/reports/recent", reportController.ListRecentReports)
	authed.GET("/reports/:reportId", reportController.GetReport)

	authed.POST("/payments/orders", paymentController.CreateOrder)
	authed.POST("/payments/verify", paymentController.VerifyPayment)
	authed.GET("/payments/transactions", paymentController.ListTransactions)
	authed.GET("/payments/transactions/pending", paymentController.GetPendingTransaction)
	authed.GET("/payments/transactions/:id/receipt", paymentController.GetReceipt)
}
