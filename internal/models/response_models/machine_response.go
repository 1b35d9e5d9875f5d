package response_models

type MachineResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type,omitempty"`
	ModelNumber    string `json:"model_number,omitempty"`
	InstallDate    string `json:"install_date,omitempty"`
	Specifications string `json:"specifications,omitempty"`
	ReportCount    int64  `json:"report_count"`
	CreatedAt      int64  `json:"created_at"`
}
