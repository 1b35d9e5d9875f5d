package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto the uniform
// envelope. A model rejection is a business outcome, not a server fault, so
// it comes back 200-adjacent (422) with the model's reason verbatim.
func HandleServiceError(c *gin.Context, err error) {
	var rejection *RejectionError

	switch {
	case errors.As(err, &rejection):
		RespondError(c, http.StatusUnprocessableEntity, rejection.Reason)
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrInsufficientCredits):
		RespondError(c, http.StatusPaymentRequired, "Insufficient credits. Please upgrade or top up.")
	case errors.Is(err, ErrInvalidSubmission):
		RespondError(c, http.StatusBadRequest, "submissionType must be MANUAL_ENTRY or FILE_UPLOAD")
	case errors.Is(err, ErrMachineNotFound):
		RespondError(c, http.StatusNotFound, "Machine not found")
	case errors.Is(err, ErrReportNotFound):
		RespondError(c, http.StatusNotFound, "Report not found")
	case errors.Is(err, ErrTransactionNotFound):
		RespondError(c, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, ErrSignatureMismatch):
		RespondError(c, http.StatusBadRequest, "Invalid Signature")
	case errors.Is(err, ErrMissingConfiguration):
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Service misconfigured")
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrUpstreamFailure):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Analysis failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
