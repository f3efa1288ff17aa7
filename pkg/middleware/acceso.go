package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/accesos"
	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
)

// Acceso guards credential-issuing endpoints with the Sitio/Clave header
// pair. A failed check short-circuits with 401 before the handler runs; the
// audit entry carries no user id because nobody is authenticated yet.
func Acceso(accesoSvc *accesos.Service, auditoria *logs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sitio := c.GetHeader("Sitio")
		clave := c.GetHeader("Clave")

		if sitio == "" || clave == "" {
			auditoria.Error(c.Request.Context(), nil, c.ClientIP(),
				"Acceso inválido", "No se han enviado credenciales de acceso")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				respuesta.ParametrosIncorrectos("Acceso inválido", "No se han enviado credenciales de acceso"))
			return
		}

		ok, err := accesoSvc.ValidarAcceso(c.Request.Context(), sitio, clave)
		if err != nil {
			auditoria.Error(c.Request.Context(), nil, c.ClientIP(),
				c.Request.Method+" "+c.Request.URL.Path, err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, respuesta.ErrorInterno())
			return
		}
		if !ok {
			auditoria.Error(c.Request.Context(), nil, c.ClientIP(),
				"Acceso inválido", "Las credenciales de acceso son inválidas")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				respuesta.ParametrosIncorrectos("Acceso inválido", "Las credenciales de acceso son inválidas"))
			return
		}

		c.Next()
	}
}
