package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"machsight/internal/models/request_models"
	"machsight/internal/services"
	"machsight/pkg/utils"
)

// maxUploadBytes caps how much of an attachment gets read into memory.
const maxUploadBytes = 16 << 20

type AnalysisController struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisController(analysisService services.AnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// Analyze godoc
// @Summary Run an AI diagnostic analysis
// @Description Submit manual readings or an uploaded document for a machine and receive a report id
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} response_models.AnalysisResultResponse
// @Security BearerAuth
// @Router /analysis [post]
func (a *AnalysisController) Analyze(c *gin.Context) {

	identity, ok := identityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request request_models.AnalyzeMachineRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "machineId and submissionType are required")
		return
	}

	sub := services.Submission{AnalyzeMachineRequest: request}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader.Size > 0 {
		f, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
			return
		}
		sub.FileData = data
		sub.FileMIME = fileHeader.Header.Get("Content-Type")
	}

	result, err := a.analysisService.Analyze(c.Request.Context(), identity, sub)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Analysis completed successfully")
}
