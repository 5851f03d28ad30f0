// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

// ErrorResponse is the standard error envelope for JSON error responses.
// Page routes render HTML error pages instead; this envelope is used when a
// non-browser caller hits an error path, carrying the trace ID for lookup.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "INTERNAL_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// ErrorCodeInternal indicates an internal server error.
const ErrorCodeInternal = "INTERNAL_ERROR"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
