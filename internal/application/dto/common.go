package dto

// ErrorResponse envoltorio de error de la API: solo un mensaje legible.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CreatedResponse respuesta de las operaciones de creación (201).
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
