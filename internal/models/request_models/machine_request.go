package request_models

type AddMachineRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Type           string `json:"type"`
	ModelNumber    string `json:"model_number"`
	InstallDate    string `json:"install_date"` // RFC 3339 date, optional
	Specifications string `json:"specifications"`
}
