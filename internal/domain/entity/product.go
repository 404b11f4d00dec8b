package entity

import "time"

// Product representa un producto (SKU del vendedor en marketplace).
// Barcode y GTIN son únicos a nivel global. El borrado es lógico (IsDeleted):
// un producto borrado se excluye de listados y de movimientos, pero sus
// registros históricos en el journal se conservan.
type Product struct {
	ID        string
	Barcode   string // código de barras externo, único
	GTIN      string // código de artículo comercial de 14 caracteres, único
	SellerSKU string
	Size      string
	Brand     string
	Color     string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
