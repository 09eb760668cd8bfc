package dto

// ErrorResponse estructura estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"error"`
}
