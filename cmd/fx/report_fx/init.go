package report_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"machsight/internal/api/controllers"
	"machsight/internal/repositories"
	"machsight/internal/services"
)

var Module = fx.Provide(
	provideReportRepo, provideReportService, provideReportController)

func provideReportRepo(db *gorm.DB) repositories.ReportRepositoryInterface {
	return repositories.NewReportRepository(db)
}

func provideReportService(reportRepo repositories.ReportRepositoryInterface) services.ReportServiceInterface {
	return services.NewReportService(reportRepo)
}

func provideReportController(reportService services.ReportServiceInterface) *controllers.ReportController {
	return controllers.NewReportController(reportService)
}
