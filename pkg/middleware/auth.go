package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/internal/tokens"
	"github.com/geotrack/geotrack-api/pkg/logger"
	"github.com/geotrack/geotrack-api/pkg/metrics"
)

// Context keys set once the request is authorized.
const (
	ClaveIDUsuario = "idUsuario"
	ClaveIDToken   = "idToken"
)

func sesionInvalida(detalle string) *respuesta.RespuestaDto {
	return respuesta.ParametrosIncorrectos("Sesión inválida", detalle)
}

// Autorizacion is the claims guard for protected endpoints. The signed
// bearer token is checked for integrity, issuer, audience and lifetime;
// liveness of the embedded opaque token is then confirmed against the token
// store, which is the single source of truth for revocation. On a
// successful handler run the session window slides forward.
func Autorizacion(firmador *tokens.Firmador, tokenSvc *tokens.Service, auditoria *logs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				sesionInvalida("No se ha enviado el token de autorización"))
			return
		}
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				sesionInvalida("El encabezado de autorización es inválido"))
			return
		}

		claims, err := firmador.Validar(raw)
		if err != nil {
			metrics.TokenValidations.WithLabelValues("invalido").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				sesionInvalida("El token de autorización es inválido"))
			return
		}

		v, err := tokenSvc.EsValido(c.Request.Context(), claims.ID, claims.Subject, c.ClientIP())
		if err != nil {
			auditoria.Error(c.Request.Context(), &claims.Subject, c.ClientIP(),
				c.Request.Method+" "+c.Request.URL.Path, err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, respuesta.ErrorInterno())
			return
		}
		if !v.Valido {
			metrics.TokenValidations.WithLabelValues("invalido").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				sesionInvalida("La sesión ha expirado o fue cerrada"))
			return
		}
		metrics.TokenValidations.WithLabelValues("valido").Inc()

		c.Set(ClaveIDUsuario, claims.Subject)
		c.Set(ClaveIDToken, claims.ID)

		c.Next()

		// sliding expiration: extend only after a successful run. A token
		// revoked mid-request makes this a harmless no-op.
		if c.Writer.Status() < http.StatusBadRequest {
			if err := tokenSvc.AumentarTiempoExpiracion(c.Request.Context(), claims.ID); err != nil {
				logger.Warnf("no se pudo extender la sesión %s: %v", claims.ID, err)
			}
		}
	}
}

// UsuarioAutenticado returns the authorized user id, when present.
func UsuarioAutenticado(c *gin.Context) (string, bool) {
	v, ok := c.Get(ClaveIDUsuario)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// TokenDeSesion returns the opaque token id bound to this request.
func TokenDeSesion(c *gin.Context) (string, bool) {
	v, ok := c.Get(ClaveIDToken)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
