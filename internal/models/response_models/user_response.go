package response_models

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Credits   int    `json:"credits"`
	Plan      string `json:"plan"`
	Role      string `json:"role"`
}
