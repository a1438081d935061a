package dto

// Error kinds returned in ErrorResponse.Kind.
const (
	ErrKindValidation  = "validation_error"
	ErrKindNotFound    = "not_found"
	ErrKindRateLimited = "rate_limited"
	ErrKindInternal    = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
