package gtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wms-marketplace/pkg/gtin"
)

func TestDerive_Numerico13Digitos_RellenaA14(t *testing.T) {
	assert.Equal(t, "04607025398765", gtin.Derive("4607025398765"))
}

func TestDerive_Numerico14Digitos_SeMantiene(t *testing.T) {
	assert.Equal(t, "14607025398765", gtin.Derive("14607025398765"))
}

func TestDerive_NoNumerico_PrefijoIMP(t *testing.T) {
	got := gtin.Derive("ABC123")
	assert.Equal(t, "IMPABC12300000", got)
	assert.Len(t, got, 14)
}

func TestDerive_Deterministico(t *testing.T) {
	// El mismo barcode siempre produce el mismo GTIN (clave para reimportaciones).
	assert.Equal(t, gtin.Derive("ABC123"), gtin.Derive("ABC123"))
}

func TestDerive_BarcodeLargo_Trunca(t *testing.T) {
	got := gtin.Derive("SKU-MUY-LARGO-CON-SUFIJO")
	assert.Len(t, got, 14)
	assert.Equal(t, "IMPSKU-MUY-LAR", got)
}

func TestDerive_NumericoCorto_NoEsGTIN(t *testing.T) {
	// 12 dígitos no califica como GTIN-13/14: se sintetiza con prefijo.
	got := gtin.Derive("460702539876")
	assert.Equal(t, "IMP", got[:3])
}
