package response_models

import "encoding/json"

type ReportSummaryResponse struct {
	ID                 string `json:"id"`
	MachineName        string `json:"machine_name"`
	MachineModelNumber string `json:"machine_model_number,omitempty"`
	Type               string `json:"type"`
	Status             string `json:"status"`
	HealthScore        int    `json:"health_score"`
	RiskLevel          string `json:"risk_level"`
	Summary            string `json:"summary"`
	CreatedAt          int64  `json:"created_at"`
}

type ReportDetailResponse struct {
	ReportSummaryResponse
	ManualInputText string          `json:"manual_input_text,omitempty"`
	Recommendations []string        `json:"recommendations"`
	RawAIResponse   json.RawMessage `json:"raw_ai_response"`
	CostInCredits   int             `json:"cost_in_credits"`
}

type AnalysisResultResponse struct {
	ReportID string `json:"report_id"`
}
