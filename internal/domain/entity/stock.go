package entity

import "time"

// StockPool identifica uno de los dos pools físicos de inventario por producto.
type StockPool string

const (
	PoolGood   StockPool = "good"   // inventario apto para venta
	PoolDefect StockPool = "defect" // inventario defectuoso (брак)
)

// Stock representa la cantidad actual de un producto en un pool.
// Invariante: Quantity >= 0 en todo momento; los decrementos se aplican con
// un update condicional en la base de datos, nunca con read-then-write.
type Stock struct {
	ProductID string
	Pool      StockPool
	Quantity  int
	UpdatedAt time.Time
}

// StockSummary agregados globales para el dashboard de stock.
type StockSummary struct {
	TotalProducts int
	TotalStock    int
	TotalDefect   int
}
