package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/accesos"
	"github.com/geotrack/geotrack-api/internal/geografia"
	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/internal/tokens"
	"github.com/geotrack/geotrack-api/internal/usuarios"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

// entornoAPI wires the complete API over in-memory repositories, with the
// same pipeline the binary assembles.
type entornoAPI struct {
	router    *gin.Engine
	auditRepo *logs.MemoryRepository
}

func nuevoEntornoAPI(t *testing.T) *entornoAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	auditRepo := logs.NewMemoryRepository()
	auditoria := logs.NewService(auditRepo)

	accesoSvc := accesos.NewService(accesos.NewMemoryRepository())
	require.NoError(t, accesoSvc.Provisionar(ctx, "shop", "clave-shop"))

	usuariosSvc := usuarios.NewService(usuarios.NewMemoryRepository())
	_, err := usuariosSvc.Registrar(ctx, "admin", "contrasena123", "Ana", "García", "ana@example.com")
	require.NoError(t, err)

	tokensSvc := tokens.NewService(tokens.NewMemoryRepository(), 30*time.Minute)
	firmador := tokens.NewFirmador("clave-jwt-de-prueba", "geotrack-api", "geotrack-clients", time.Hour)

	paisRepo := geografia.NewPaisMemoryRepository()
	depRepo := geografia.NewDepartamentoMemoryRepository()
	ciudadRepo := geografia.NewCiudadMemoryRepository()

	r := gin.New()
	r.Use(middleware.Recuperacion(auditoria), middleware.Auditoria(auditoria))
	api := r.Group("/api")

	acceso := middleware.Acceso(accesoSvc, auditoria)
	guard := middleware.Autorizacion(firmador, tokensSvc, auditoria)

	NewAuthHandler(usuariosSvc, tokensSvc, firmador, auditoria).Register(api, acceso, guard)
	NewPaisHandler(geografia.NewPaisService(paisRepo, depRepo)).Register(api, guard)
	NewDepartamentoHandler(geografia.NewDepartamentoService(depRepo, paisRepo, ciudadRepo)).Register(api, guard)
	NewCiudadHandler(geografia.NewCiudadService(ciudadRepo, depRepo)).Register(api, guard)

	return &entornoAPI{router: r, auditRepo: auditRepo}
}

func (e *entornoAPI) hacer(t *testing.T, metodo, ruta string, cuerpo any, encabezados map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if cuerpo != nil {
		b, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(metodo, ruta, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range encabezados {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) respuesta.RespuestaDto {
	t.Helper()
	var r respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func encabezadosAcceso() map[string]string {
	return map[string]string{"Sitio": "shop", "Clave": "clave-shop"}
}

// iniciarSesion authenticates admin and returns the bearer token.
func (e *entornoAPI) iniciarSesion(t *testing.T) string {
	t.Helper()
	w := e.hacer(t, http.MethodPost, "/api/auth/login",
		gin.H{"nombreUsuario": "admin", "contrasena": "contrasena123"}, encabezadosAcceso())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	r := decodificar(t, w)
	resultado, ok := r.Resultado.(map[string]interface{})
	require.True(t, ok)
	token, ok := resultado["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func conBearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
