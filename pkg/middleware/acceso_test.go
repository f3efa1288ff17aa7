package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/accesos"
	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
)

func routerConAcceso(t *testing.T) (*gin.Engine, *logs.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accesoSvc := accesos.NewService(accesos.NewMemoryRepository())
	require.NoError(t, accesoSvc.Provisionar(context.Background(), "shop", "s3cr3t"))

	auditRepo := logs.NewMemoryRepository()
	auditoria := logs.NewService(auditRepo)

	r := gin.New()
	r.POST("/login", Acceso(accesoSvc, auditoria), func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "autenticado", nil))
	})
	return r, auditRepo
}

func TestAccesoSinCredenciales(t *testing.T) {
	r, auditRepo := routerConAcceso(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exito)
	assert.Equal(t, "Acceso inválido", resp.Titulo)

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	assert.Equal(t, logs.TipoError, entradas[0].Tipo)
	assert.Nil(t, entradas[0].IDUsuario)
}

func TestAccesoClaveIncorrecta(t *testing.T) {
	r, _ := routerConAcceso(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Sitio", "shop")
	req.Header.Set("Clave", "wrongkey")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exito)
	assert.Equal(t, "Acceso inválido", resp.Titulo)
	require.NotNil(t, resp.Detalle)
	assert.Equal(t, "Las credenciales de acceso son inválidas", *resp.Detalle)
}

func TestAccesoSitioDesconocido(t *testing.T) {
	r, _ := routerConAcceso(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Sitio", "nadie")
	req.Header.Set("Clave", "s3cr3t")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccesoValido(t *testing.T) {
	r, auditRepo := routerConAcceso(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Sitio", "shop")
	req.Header.Set("Clave", "s3cr3t")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, auditRepo.Entradas())
}
