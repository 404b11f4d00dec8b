package dto

import "time"

// CreateSourceRequest entrada para crear un source (proveedor o ПВЗ).
type CreateSourceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateSourceRequest actualización parcial de un source.
type UpdateSourceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SourceResponse salida de un source.
type SourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
