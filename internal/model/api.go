package model

// ErrorResponse is the uniform error envelope: {"error": "..."} with an
// optional upstream detail for diagnostics.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewErrorResponse builds an error envelope
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Error: message, Detail: detail}
}

// SuccessResponse is the generic {success:true} envelope with an optional
// message and payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(message string, data any) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}
