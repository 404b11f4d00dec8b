package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/inventory"
)

func TestEffectFor_CatalogoCompleto(t *testing.T) {
	cases := []struct {
		op   entity.OperationType
		want inventory.Effect
	}{
		{entity.OpReceipt, inventory.Effect{GoodDelta: +1}},
		{entity.OpReceiptDefect, inventory.Effect{DefectDelta: +1}},
		{entity.OpShipmentRC, inventory.Effect{GoodDelta: -1, RequiresDC: true}},
		{entity.OpReturnPickup, inventory.Effect{GoodDelta: +1, RequiresSource: true}},
		{entity.OpReturnDefect, inventory.Effect{DefectDelta: +1, RequiresSource: true}},
		{entity.OpSelfPurchase, inventory.Effect{GoodDelta: +1, RequiresSource: true}},
		{entity.OpWriteOff, inventory.Effect{GoodDelta: -1, DefectDelta: +1}},
		{entity.OpRestoration, inventory.Effect{GoodDelta: +1, DefectDelta: -1}},
		{entity.OpUtilization, inventory.Effect{DefectDelta: -1}},
	}
	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			got, ok := inventory.EffectFor(tc.op)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectFor_OperacionDesconocida(t *testing.T) {
	_, ok := inventory.EffectFor(entity.OperationType("teleport"))
	assert.False(t, ok)
}

func TestOperations_SonNueve(t *testing.T) {
	assert.Len(t, inventory.Operations(), 9)
}
