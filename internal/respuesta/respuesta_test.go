package respuesta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	r := ParametrosIncorrectos("Acceso inválido", "Las credenciales de acceso son inválidas")
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, false, got["exito"])
	assert.Equal(t, "Acceso inválido", got["titulo"])
	assert.Equal(t, "Las credenciales de acceso son inválidas", got["detalle"])
	assert.Nil(t, got["resultado"])
}

func TestErrorInternoHidesDetailByDefault(t *testing.T) {
	r := ErrorInterno()
	assert.False(t, r.Exito)
	assert.Nil(t, r.Detalle)

	con := ErrorInterno("stack interno")
	require.NotNil(t, con.Detalle)
	assert.Equal(t, "stack interno", *con.Detalle)
}

func TestPaginacionVacia(t *testing.T) {
	p := NuevaPaginacion[string](1, 10, 0, nil)
	assert.Equal(t, int64(0), p.TotalRegistros)
	assert.Equal(t, 0, p.TotalPaginas)
	assert.NotNil(t, p.Lista)
	assert.Empty(t, p.Lista)
}

func TestPaginacionRedondeaHaciaArriba(t *testing.T) {
	p := NuevaPaginacion[int](2, 10, 21, []int{1})
	assert.Equal(t, 3, p.TotalPaginas)
	assert.Equal(t, 2, p.Pagina)
}
