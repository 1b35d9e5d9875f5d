package payment_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"machsight/internal/api/controllers"
	"machsight/internal/config"
	"machsight/internal/infra"
	"machsight/internal/repositories"
	"machsight/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideOrderCreator, providePaymentService, providePaymentController)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func provideOrderCreator(cfg *config.Config) services.OrderCreator {
	return infra.NewRazorpayOrderCreator(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
}

func providePaymentService(
	txnRepo repositories.TransactionRepositoryInterface,
	orders services.OrderCreator,
	cfg *config.Config,
) services.PaymentServiceInterface {
	instance, err := services.NewPaymentService(txnRepo, orders, cfg.Razorpay.KeySecret)
	if err != nil {
		log.Fatalf("Error initializing PaymentService: %v", err)
	}
	return instance
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
