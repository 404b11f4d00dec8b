package entity

import "time"

// OperationType es el tipo de operación de inventario. El catálogo es fijo:
// nueve operaciones, cada una con un efecto definido sobre los pools
// (ver internal/domain/inventory).
type OperationType string

const (
	OpReceipt       OperationType = "receipt"        // приёмка: entrada de mercancía apta
	OpReceiptDefect OperationType = "receipt_defect" // entrada directa de defectuosos
	OpShipmentRC    OperationType = "shipment_rc"    // envío a centro de distribución del marketplace
	OpReturnPickup  OperationType = "return_pickup"  // devolución apta desde punto de recogida
	OpReturnDefect  OperationType = "return_defect"  // devolución defectuosa
	OpSelfPurchase  OperationType = "self_purchase"  // autocompra (recompra del propio vendedor)
	OpWriteOff      OperationType = "write_off"      // reclasificación de apto a defectuoso
	OpRestoration   OperationType = "restoration"    // reparación: de defectuoso a apto
	OpUtilization   OperationType = "utilization"    // destrucción de defectuosos
)

// StockMovement es un registro inmutable del journal de auditoría: una
// operación ejecutada sobre un producto. Nunca se actualiza ni se borra;
// Source y DistributionCenter pueden quedar en nil si la referencia se
// eliminó después (FK SET NULL).
type StockMovement struct {
	ID                   string
	OperationType        OperationType
	ProductID            string
	Quantity             int // siempre positivo; la dirección la implica la operación
	SourceID             *string
	DistributionCenterID *string
	UserID               string
	Notes                string
	CreatedAt            time.Time

	// Denormalizados para mostrar en el journal (join con products).
	ProductBarcode string
	ProductGTIN    string
}
