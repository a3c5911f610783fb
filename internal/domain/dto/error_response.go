package dto

// ErrorResponse is the uniform error body returned by every endpoint.
//
// The wire contract is a single field:
//
//	{"error": "<message>"}
//
// Internal details (driver errors, stack traces) are logged server-side and
// never placed in Message.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"error" example:"pair cannot be empty"`
}

// Error implements the error interface so an ErrorResponse can travel as a
// plain error where convenient (e.g., middleware).
func (e ErrorResponse) Error() string {
	return e.Message
}

// NewErrorResponse builds the response body for a client-visible message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
