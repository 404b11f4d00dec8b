package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductListQuerySinFiltro(t *testing.T) {
	query, args := buildProductListQuery("", 20, 0)

	assert.NotContains(t, query, "ILIKE")
	require.Len(t, args, 2)
	assert.Equal(t, 20, args[0])
	assert.Equal(t, 0, args[1])
}

func TestBuildProductListQueryBarcodeSubcadena(t *testing.T) {
	query, args := buildProductListQuery("0253", 20, 40)

	// Subcadena case-insensitive: "0253" debe matchear "4607025398765".
	assert.Contains(t, query, "p.barcode ILIKE $1")
	assert.NotContains(t, query, "LIKE $1 ||")
	require.Len(t, args, 3)
	assert.Equal(t, "%0253%", args[0])
	assert.Equal(t, 20, args[1])
	assert.Equal(t, 40, args[2])

	// El patrón no ancla al inicio ni al final del barcode.
	pattern := args[0].(string)
	assert.True(t, strings.HasPrefix(pattern, "%"))
	assert.True(t, strings.HasSuffix(pattern, "%"))
}

func TestBuildProductCountQuery(t *testing.T) {
	query, args := buildProductCountQuery("")
	assert.NotContains(t, query, "ILIKE")
	assert.Empty(t, args)

	query, args = buildProductCountQuery("abc")
	assert.Contains(t, query, "barcode ILIKE $1")
	require.Len(t, args, 1)
	assert.Equal(t, "%abc%", args[0])
}
