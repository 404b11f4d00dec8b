package dto

import "time"

// CreateProductRequest entrada para crear un producto (con sus dos pools en cero).
type CreateProductRequest struct {
	Barcode   string `json:"barcode"`
	GTIN      string `json:"gtin"`
	SellerSKU string `json:"seller_sku,omitempty"`
	Size      string `json:"size,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Color     string `json:"color,omitempty"`
}

// UpdateProductRequest entrada para actualización parcial.
type UpdateProductRequest struct {
	Barcode   *string `json:"barcode"`
	GTIN      *string `json:"gtin"`
	SellerSKU *string `json:"seller_sku"`
	Size      *string `json:"size"`
	Brand     *string `json:"brand"`
	Color     *string `json:"color"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Barcode   string    `json:"barcode"`
	GTIN      string    `json:"gtin"`
	SellerSKU string    `json:"seller_sku,omitempty"`
	Size      string    `json:"size,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductWithStockResponse producto con las cantidades de ambos pools (listados).
type ProductWithStockResponse struct {
	ProductResponse
	StockQuantity  int `json:"stock_quantity"`
	DefectQuantity int `json:"defect_quantity"`
}

// ProductListResponse lista paginada de productos activos.
type ProductListResponse struct {
	Items    []ProductWithStockResponse `json:"items"`
	Total    int                        `json:"total"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"page_size"`
	Pages    int                        `json:"pages"`
}
