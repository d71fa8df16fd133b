package dto

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
