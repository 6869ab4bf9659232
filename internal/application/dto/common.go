package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse estado de la última carga remota.
type StatusResponse struct {
	Loading     bool   `json:"loading"`
	Error       string `json:"error,omitempty"`
	LastUpdated *int64 `json:"last_updated,omitempty"` // epoch en milisegundos
	TotalCount  int    `json:"total_count"`
}
