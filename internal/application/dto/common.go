package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadyResponse respuesta de /ready con el resultado de la última carga inicial.
type ReadyResponse struct {
	Ready   bool           `json:"ready"`
	Outcome string         `json:"outcome,omitempty"`
	Policy  string         `json:"policy,omitempty"`
	Created map[string]int `json:"created,omitempty"`
	Error   string         `json:"error,omitempty"`
}
