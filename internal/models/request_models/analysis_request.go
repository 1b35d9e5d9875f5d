package request_models

// AnalyzeMachineRequest is bound from a multipart form: either the nine
// manual fields or an uploaded file, discriminated by SubmissionType.
type AnalyzeMachineRequest struct {
	MachineID      string `form:"machineId" binding:"required"`
	SubmissionType string `form:"submissionType" binding:"required"`

	PrimaryMetric   string `form:"primary_metric"`
	SecondaryMetric string `form:"secondary_metric"`
	OperatingLoad   string `form:"operating_load"`
	Runtime         string `form:"runtime"`
	ErrorCodes      string `form:"error_codes"`
	NoiseProfile    string `form:"noise_profile"`
	EnvCondition    string `form:"env_condition"`
	VisualSigns     string `form:"visual_signs"`
	TextInput       string `form:"textInput"`
}
