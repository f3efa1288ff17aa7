package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
)

func routerConAuditoria(auditRepo *logs.MemoryRepository, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auditoria(logs.NewService(auditRepo)))
	r.GET("/api/pais", handler)
	return r
}

func TestAuditoriaRegistraPeticion(t *testing.T) {
	auditRepo := logs.NewMemoryRepository()
	r := routerConAuditoria(auditRepo, func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pais", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	assert.Equal(t, "GET /api/pais", entradas[0].Accion)
	assert.Equal(t, "200", entradas[0].Tipo)
	assert.Nil(t, entradas[0].IDUsuario)
	assert.Contains(t, entradas[0].Detalle, "Estado: 200")
}

func TestAuditoriaOmiteNoAutorizados(t *testing.T) {
	auditRepo := logs.NewMemoryRepository()
	r := routerConAuditoria(auditRepo, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			respuesta.ParametrosIncorrectos("Sesión inválida", "token vencido"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pais", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Empty(t, auditRepo.Entradas())
}

func TestAuditoriaUsaClaimsSobreEncabezado(t *testing.T) {
	auditRepo := logs.NewMemoryRepository()
	r := routerConAuditoria(auditRepo, func(c *gin.Context) {
		c.Set(ClaveIDUsuario, "usuario-autenticado")
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pais", nil)
	req.Header.Set("IdUsuario", "7f6c2b9e-8f30-4c5a-9f63-0d6a1f0a1b2c")
	r.ServeHTTP(w, req)

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	require.NotNil(t, entradas[0].IDUsuario)
	assert.Equal(t, "usuario-autenticado", *entradas[0].IDUsuario)
}

func TestAuditoriaEncabezadoMalformado(t *testing.T) {
	auditRepo := logs.NewMemoryRepository()
	r := routerConAuditoria(auditRepo, func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pais", nil)
	req.Header.Set("IdUsuario", "no-es-un-uuid")
	r.ServeHTTP(w, req)

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	assert.Nil(t, entradas[0].IDUsuario)
}

func TestAuditoriaEncabezadoValido(t *testing.T) {
	auditRepo := logs.NewMemoryRepository()
	r := routerConAuditoria(auditRepo, func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pais", nil)
	req.Header.Set("IdUsuario", "7f6c2b9e-8f30-4c5a-9f63-0d6a1f0a1b2c")
	r.ServeHTTP(w, req)

	entradas := auditRepo.Entradas()
	require.Len(t, entradas, 1)
	require.NotNil(t, entradas[0].IDUsuario)
	assert.Equal(t, "7f6c2b9e-8f30-4c5a-9f63-0d6a1f0a1b2c", *entradas[0].IDUsuario)
}
