package response

import "time"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope returned by all non-2xx HTTP responses.
type ErrorResponse struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	Path        string       `json:"path"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// NewError builds an ErrorResponse without field-level detail.
func NewError(status int, errLabel, message, path string) *ErrorResponse {
	return &ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errLabel,
		Message:   message,
		Path:      path,
	}
}

// NewValidationError builds an ErrorResponse carrying per-field errors.
func NewValidationError(status int, errLabel, message, path string, fields []FieldError) *ErrorResponse {
	r := NewError(status, errLabel, message, path)
	r.FieldErrors = fields
	return r
}
