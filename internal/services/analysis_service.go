package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"machsight/internal/diagnostics"
	"machsight/internal/gateway"
	"machsight/internal/models/db_models"
	"machsight/internal/models/request_models"
	"machsight/internal/models/response_models"
	"machsight/internal/repositories"
	"machsight/pkg/utils"
)

const reportCost = 1

// Submission is one diagnostic request: the bound form fields plus the
// uploaded file bytes when the discriminator says FILE_UPLOAD.
type Submission struct {
	request_models.AnalyzeMachineRequest
	FileData []byte
	FileMIME string
}

type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, identity Identity, sub Submission) (*response_models.AnalysisResultResponse, error)
}

type AnalysisService struct {
	users    UserServiceInterface
	machines repositories.MachineRepositoryInterface
	reports  repositories.ReportRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	model    gateway.Client
}

func NewAnalysisService(
	users UserServiceInterface,
	machines repositories.MachineRepositoryInterface,
	reports repositories.ReportRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	model gateway.Client,
) AnalysisServiceInterface {
	return &AnalysisService{
		users:    users,
		machines: machines,
		reports:  reports,
		userRepo: userRepo,
		model:    model,
	}
}

// Analyze runs the submission-to-report pipeline: credit gate, context
// build, prompt, model call, validity branch, persistence, accounting.
// A model rejection comes back as *utils.RejectionError and leaves no side
// effects behind.
func (s *AnalysisService) Analyze(ctx context.Context, identity Identity, sub Submission) (*response_models.AnalysisResultResponse, error) {

	user, err := s.users.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	// Fail fast before spending anything on the model: metered users need
	// at least one credit in hand.
	if !user.Unlimited() && user.Credits < reportCost {
		return nil, utils.ErrInsufficientCredits
	}

	machineID, err := uuid.Parse(sub.MachineID)
	if err != nil {
		return nil, utils.ErrMachineNotFound
	}
	machine, err := s.machines.FindByIDForUser(ctx, machineID, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if machine == nil {
		return nil, utils.ErrMachineNotFound
	}

	submissionType, ok := diagnostics.ParseSubmissionType(sub.SubmissionType)
	if !ok {
		return nil, utils.ErrInvalidSubmission
	}

	var dctx diagnostics.Context
	switch submissionType {
	case diagnostics.ManualEntry:
		dctx = diagnostics.BuildManualContext(diagnostics.ManualFields{
			PrimaryMetric:   sub.PrimaryMetric,
			SecondaryMetric: sub.SecondaryMetric,
			OperatingLoad:   sub.OperatingLoad,
			Runtime:         sub.Runtime,
			ErrorCodes:      sub.ErrorCodes,
			NoiseProfile:    sub.NoiseProfile,
			EnvCondition:    sub.EnvCondition,
			VisualSigns:     sub.VisualSigns,
			Notes:           sub.TextInput,
		})
	case diagnostics.FileUpload:
		dctx = diagnostics.BuildUploadContext(sub.FileData, sub.FileMIME)
	}

	prompt := diagnostics.ComposePrompt(
		diagnostics.AssetProfile{Name: machine.Name, Type: machine.Type},
		user.Unlimited(),
		dctx,
	)

	raw, err := s.model.Generate(ctx, prompt, dctx.Attachment)
	if err != nil {
		log.Printf("Analyze: model call failed: %v", err)
		return nil, utils.ErrUpstreamFailure
	}

	analysis, rejection, err := diagnostics.ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	// The model classified the input as out-of-domain. Business outcome,
	// not an error path: no report, no deduction.
	if rejection != nil {
		log.Printf("Analyze: invalid input rejected: %s", rejection.Reason)
		return nil, &utils.RejectionError{Reason: rejection.Reason}
	}

	manualText := "File Upload"
	if submissionType == diagnostics.ManualEntry {
		manualText = dctx.Text
	}

	recommendations, _ := json.Marshal(analysis.ImmediateActions)

	report := &db_models.Report{
		UserID:          user.ID,
		MachineID:       machine.ID,
		Type:            db_models.SubmissionType(submissionType),
		ManualInputText: manualText,
		Status:          db_models.ReportStatusCompleted,
		HealthScore:     analysis.HealthScore,
		RiskLevel:       db_models.RiskLevel(analysis.RiskLevel),
		Summary:         analysis.ExecutiveSummary,
		Recommendations: datatypes.JSON(recommendations),
		RawAIResponse:   datatypes.JSON(analysis.Raw),
		CostInCredits:   reportCost,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		log.Printf("Analyze: report persist failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if !user.Unlimited() {
		if err := s.userRepo.DecrementCredits(ctx, user.ID, reportCost); err != nil {
			log.Printf("Analyze: credit deduction failed for user %s: %v", user.ID, err)
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.AnalysisResultResponse{ReportID: report.ID.String()}, nil
}
