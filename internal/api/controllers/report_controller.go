package controllers

import (
	"github.com/gin-gonic/gin"

	"machsight/internal/services"
	"machsight/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// ListReports godoc
// @Summary List all reports for the authenticated user
// @Tags Reports
// @Produce json
// @Success 200 {array} response_models.ReportSummaryResponse
// @Security BearerAuth
// @Router /reports [get]
func (r *ReportController) ListReports(c *gin.Context) {
	userID := c.GetString("user_id")

	reports, err := r.reportService.ListReports(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reports, "Reports fetched successfully")
}

// ListRecentReports returns the dashboard widget's five newest reports.
func (r *ReportController) ListRecentReports(c *gin.Context) {
	userID := c.GetString("user_id")

	reports, err := r.reportService.ListRecentReports(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reports, "Recent reports fetched successfully")
}

// GetReport godoc
// @Summary Get a single report by ID
// @Tags Reports
// @Produce json
// @Param reportId path string true "Report ID"
// @Success 200 {object} response_models.ReportDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reports/{reportId} [get]
func (r *ReportController) GetReport(c *gin.Context) {
	reportID := c.Param("reportId")
	userID := c.GetString("user_id")

	report, err := r.reportService.GetReport(c.Request.Context(), userID, reportID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Report fetched successfully")
}
