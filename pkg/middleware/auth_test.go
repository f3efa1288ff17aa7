package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/internal/tokens"
)

type entornoAuth struct {
	router   *gin.Engine
	firmador *tokens.Firmador
	tokenSvc *tokens.Service
	repo     *tokens.MemoryRepository
}

func nuevoEntornoAuth(t *testing.T, handler gin.HandlerFunc) *entornoAuth {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := tokens.NewMemoryRepository()
	tokenSvc := tokens.NewService(repo, 30*time.Minute)
	firmador := tokens.NewFirmador("clave-de-prueba", "geotrack-api", "geotrack-clients", time.Hour)
	auditoria := logs.NewService(logs.NewMemoryRepository())

	if handler == nil {
		handler = func(c *gin.Context) {
			id, _ := UsuarioAutenticado(c)
			c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", id))
		}
	}

	r := gin.New()
	r.GET("/perfil", Autorizacion(firmador, tokenSvc, auditoria), handler)
	return &entornoAuth{router: r, firmador: firmador, tokenSvc: tokenSvc, repo: repo}
}

// emite un bearer válido para el usuario indicado, ligado a la IP de prueba
func (e *entornoAuth) bearer(t *testing.T, idUsuario, ip string) (string, string) {
	t.Helper()
	idToken, err := e.tokenSvc.Generar(context.Background(), idUsuario, ip)
	require.NoError(t, err)
	raw, err := e.firmador.Emitir(idToken, idUsuario)
	require.NoError(t, err)
	return raw, idToken
}

func peticionPerfil(bearer, remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.RemoteAddr = remoteAddr
	return req
}

func TestAutorizacionSinEncabezado(t *testing.T) {
	e := nuevoEntornoAuth(t, nil)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil("", "10.0.0.1:1234"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sesión inválida", resp.Titulo)
}

func TestAutorizacionTokenMalFirmado(t *testing.T) {
	e := nuevoEntornoAuth(t, nil)

	otro := tokens.NewFirmador("otra-clave", "geotrack-api", "geotrack-clients", time.Hour)
	raw, err := otro.Emitir("algun-id", "algun-usuario")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.1:1234"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAutorizacionSesionCerrada(t *testing.T) {
	e := nuevoEntornoAuth(t, nil)
	raw, idToken := e.bearer(t, "usuario-1", "10.0.0.1")

	ok, err := e.tokenSvc.Cancelar(context.Background(), idToken)
	require.NoError(t, err)
	require.True(t, ok)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.1:1234"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Detalle)
	assert.Equal(t, "La sesión ha expirado o fue cerrada", *resp.Detalle)
}

func TestAutorizacionIPDistinta(t *testing.T) {
	e := nuevoEntornoAuth(t, nil)
	raw, _ := e.bearer(t, "usuario-1", "10.0.0.1")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.99:1234"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAutorizacionExitosa(t *testing.T) {
	e := nuevoEntornoAuth(t, func(c *gin.Context) {
		id, ok := UsuarioAutenticado(c)
		require.True(t, ok)
		idToken, ok := TokenDeSesion(c)
		require.True(t, ok)
		assert.NotEmpty(t, idToken)
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", id))
	})
	raw, _ := e.bearer(t, "usuario-1", "10.0.0.1")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.1:1234"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp respuesta.RespuestaDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Exito)
	assert.Equal(t, "usuario-1", resp.Resultado)
}

func TestAutorizacionExtiendeSesion(t *testing.T) {
	e := nuevoEntornoAuth(t, nil)
	raw, idToken := e.bearer(t, "usuario-1", "10.0.0.1")

	antes, err := e.repo.ObtenerPorID(context.Background(), idToken)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, w.Code)

	despues, err := e.repo.ObtenerPorID(context.Background(), idToken)
	require.NoError(t, err)
	assert.True(t, despues.FechaExpiracion.After(antes.FechaExpiracion))
}

func TestAutorizacionNoExtiendeTrasFallo(t *testing.T) {
	e := nuevoEntornoAuth(t, func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Fallo", "detalle"))
	})
	raw, idToken := e.bearer(t, "usuario-1", "10.0.0.1")

	antes, err := e.repo.ObtenerPorID(context.Background(), idToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, peticionPerfil(raw, "10.0.0.1:1234"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	despues, err := e.repo.ObtenerPorID(context.Background(), idToken)
	require.NoError(t, err)
	assert.Equal(t, antes.FechaExpiracion, despues.FechaExpiracion)
}
