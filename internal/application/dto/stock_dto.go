package dto

// StockSummaryResponse agregados globales de inventario.
type StockSummaryResponse struct {
	TotalProducts int `json:"total_products"`
	TotalStock    int `json:"total_stock"`
	TotalDefect   int `json:"total_defect"`
}
