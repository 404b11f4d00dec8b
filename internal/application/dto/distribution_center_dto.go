package dto

import "time"

// CreateDCRequest entrada para crear un centro de distribución.
type CreateDCRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Marketplace string `json:"marketplace"`
}

// UpdateDCRequest actualización parcial de un centro de distribución.
type UpdateDCRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Marketplace *string `json:"marketplace"`
}

// DCResponse salida de un centro de distribución.
type DCResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Marketplace string    `json:"marketplace"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
