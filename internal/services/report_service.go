package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"machsight/internal/models/db_models"
	"machsight/internal/models/response_models"
	"machsight/internal/repositories"
	"machsight/pkg/utils"
)

const recentReportLimit = 5

type ReportServiceInterface interface {
	ListReports(ctx context.Context, userID string) ([]response_models.ReportSummaryResponse, error)
	ListRecentReports(ctx context.Context, userID string) ([]response_models.ReportSummaryResponse, error)
	GetReport(ctx context.Context, userID string, reportID string) (*response_models.ReportDetailResponse, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo}
}

func (s *ReportService) ListReports(ctx context.Context, userID string) ([]response_models.ReportSummaryResponse, error) {
	return s.list(ctx, userID, 0)
}

func (s *ReportService) ListRecentReports(ctx context.Context, userID string) ([]response_models.ReportSummaryResponse, error) {
	return s.list(ctx, userID, recentReportLimit)
}

func (s *ReportService) list(ctx context.Context, userID string, limit int) ([]response_models.ReportSummaryResponse, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.ReportSummaryResponse, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, summarize(r))
	}
	return summaries, nil
}

func (s *ReportService) GetReport(ctx context.Context, userID string, reportID string) (*response_models.ReportDetailResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, utils.ErrReportNotFound
	}

	report, err := s.reportRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}

	var recommendations []string
	_ = json.Unmarshal(report.Recommendations, &recommendations)

	detail := &response_models.ReportDetailResponse{
		ReportSummaryResponse: summarize(*report),
		Recommendations:       recommendations,
		RawAIResponse:         json.RawMessage(report.RawAIResponse),
		CostInCredits:         report.CostInCredits,
	}
	if report.Type == db_models.SubmissionManualEntry {
		detail.ManualInputText = report.ManualInputText
	}
	return detail, nil
}

func summarize(r db_models.Report) response_models.ReportSummaryResponse {
	return response_models.ReportSummaryResponse{
		ID:                 r.ID.String(),
		MachineName:        r.Machine.Name,
		MachineModelNumber: r.Machine.ModelNumber,
		Type:               string(r.Type),
		Status:             r.Status,
		HealthScore:        r.HealthScore,
		RiskLevel:          string(r.RiskLevel),
		Summary:            r.Summary,
		CreatedAt:          r.CreatedAt,
	}
}
