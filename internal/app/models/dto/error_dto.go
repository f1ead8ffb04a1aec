package dto

// ErrorResponse is the standard error body: a localized message plus
// optional field-level detail for validation failures.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewValidationErrorResponse creates a validation error response carrying
// the framework-generated field detail.
func NewValidationErrorResponse(details interface{}) ErrorResponse {
	return ErrorResponse{Message: "Dados inválidos.", Details: details}
}
