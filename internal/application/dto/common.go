package dto

// ErrorResponse cuerpo de error HTTP. Success siempre es false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
