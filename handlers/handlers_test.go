package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/geotrack/geotrack-api/internal/respuesta"
)

func TestEscribirMapeaEstados(t *testing.T) {
	gin.SetMode(gin.TestMode)

	casos := []struct {
		nombre string
		r      *respuesta.RespuestaDto
		estado int
	}{
		{"exito", respuesta.Exitoso("OK", "", nil), http.StatusOK},
		{"validacion", respuesta.ParametrosIncorrectos("Creación fallida", "duplicado"), http.StatusBadRequest},
		{"no encontrado", respuesta.NoEncontrado("País"), http.StatusNotFound},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			escribir(c, tc.r)
			assert.Equal(t, tc.estado, w.Code)
		})
	}
}

func TestEsNoEncontradoNoDependeDeLiterales(t *testing.T) {
	// el título exportado y el constructor deben coincidir siempre
	assert.Equal(t, respuesta.TituloNoEncontrado, respuesta.NoEncontrado("País").Titulo)
	assert.True(t, respuesta.NoEncontrado("Ciudad").EsNoEncontrado())
	assert.False(t, respuesta.ParametrosIncorrectos("Creación fallida", "x").EsNoEncontrado())
	assert.False(t, respuesta.Exitoso(respuesta.TituloNoEncontrado, "", nil).EsNoEncontrado())
}
