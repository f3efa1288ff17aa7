package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
)

func TestRecuperacionConvierteEnError500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auditRepo := logs.NewMemoryRepository()

	r := gin.New()
	r.Use(Recuperacion(logs.NewService(auditRepo)))
	r.GET("/api/pais", func(c *gin.Context) {
		panic("conexión perdida con la base de datos")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pais", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exito)
	assert.Equal(t, "Error interno", resp.Titulo)
	// el mensaje real nunca viaja al cliente
	assert.NotContains(t, w.Body.String(), "conexión perdida")

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	assert.Equal(t, logs.TipoError, entradas[0].Tipo)
	assert.Contains(t, entradas[0].Detalle, "conexión perdida con la base de datos")
}

func TestRecuperacionNoInterfiereSinPanico(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auditRepo := logs.NewMemoryRepository()

	r := gin.New()
	r.Use(Recuperacion(logs.NewService(auditRepo)))
	r.GET("/api/pais", func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pais", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, auditRepo.Entradas())
}
