package dto

// ContactRequest is the site contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
}

// StatusResponse is a bare success flag.
type StatusResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse reports a failed request. Fields lists rejected input.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"errors,omitempty"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
