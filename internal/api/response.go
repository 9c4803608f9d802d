// Package api defines wire types shared across HTTP handlers.
package api

// ErrorResponse is the uniform failure envelope. Every response in the API
// carries the boolean success discriminator; failures add a message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error builds a failure envelope with the given message.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
