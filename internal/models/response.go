package models

// ErrorResponse is the standard error body returned by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
