package dto

import "time"

// CreateMovementRequest body para POST /api/stock/movements.
type CreateMovementRequest struct {
	ProductID            string  `json:"product_id"`
	OperationType        string  `json:"operation_type"`
	Quantity             int     `json:"quantity"`
	SourceID             *string `json:"source_id,omitempty"`
	DistributionCenterID *string `json:"distribution_center_id,omitempty"`
	Notes                string  `json:"notes,omitempty"`
}

// MovementResponse un movimiento del journal, enriquecido con barcode/GTIN
// del producto para visualización.
type MovementResponse struct {
	ID                   string    `json:"id"`
	OperationType        string    `json:"operation_type"`
	ProductID            string    `json:"product_id"`
	Quantity             int       `json:"quantity"`
	SourceID             *string   `json:"source_id"`
	DistributionCenterID *string   `json:"distribution_center_id"`
	UserID               string    `json:"user_id"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	ProductBarcode       string    `json:"product_barcode,omitempty"`
	ProductGTIN          string    `json:"product_gtin,omitempty"`
}

// MovementListResponse página del journal, del más reciente al más antiguo.
type MovementListResponse struct {
	Items    []MovementResponse `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Pages    int                `json:"pages"`
}
