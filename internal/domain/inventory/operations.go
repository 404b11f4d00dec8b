package inventory

import "github.com/jhoicas/wms-marketplace/internal/domain/entity"

// Effect describe el efecto de una operación sobre los dos pools de stock y
// los campos acompañantes que exige. Los deltas son signos por unidad:
// +1 suma la cantidad, -1 la resta (con verificación de stock suficiente),
// 0 no toca el pool.
type Effect struct {
	GoodDelta      int
	DefectDelta    int
	RequiresSource bool
	RequiresDC     bool
}

// effects es la tabla de despacho del catálogo de nueve operaciones.
// Agregar una operación es una entrada aquí más su constante en entity.
var effects = map[entity.OperationType]Effect{
	entity.OpReceipt:       {GoodDelta: +1},
	entity.OpReceiptDefect: {DefectDelta: +1},
	entity.OpShipmentRC:    {GoodDelta: -1, RequiresDC: true},
	entity.OpReturnPickup:  {GoodDelta: +1, RequiresSource: true},
	entity.OpReturnDefect:  {DefectDelta: +1, RequiresSource: true},
	entity.OpSelfPurchase:  {GoodDelta: +1, RequiresSource: true},
	entity.OpWriteOff:      {GoodDelta: -1, DefectDelta: +1},
	entity.OpRestoration:   {GoodDelta: +1, DefectDelta: -1},
	entity.OpUtilization:   {DefectDelta: -1},
}

// EffectFor devuelve el efecto de la operación; ok=false si la operación no
// pertenece al catálogo.
func EffectFor(op entity.OperationType) (Effect, bool) {
	e, ok := effects[op]
	return e, ok
}

// Operations devuelve el catálogo completo (para validación y documentación).
func Operations() []entity.OperationType {
	ops := make([]entity.OperationType, 0, len(effects))
	for op := range effects {
		ops = append(ops, op)
	}
	return ops
}
