package dto

// ErrorResponse cuerpo de error HTTP. Message nunca incluye stack traces
// ni errores crudos de infraestructura.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
