package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/pkg/logger"
)

// Recuperacion is the outermost stage of the pipeline: any fault that
// escapes an inner stage — the audit step included — is converted into the
// generic 500 envelope. The real message goes to the audit log and the
// process log, never to the client. A secondary failure while writing the
// audit entry is swallowed so it cannot alter the response.
func Recuperacion(auditoria *logs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			mensaje := fmt.Sprintf("%v", r)
			logger.Errorf("error no controlado en %s %s: %s",
				c.Request.Method, c.Request.URL.Path, mensaje)

			func() {
				defer func() { _ = recover() }()
				auditoria.Error(c.Request.Context(), usuarioParaAuditoria(c), c.ClientIP(),
					c.Request.Method+" "+c.Request.URL.Path, mensaje)
			}()

			c.AbortWithStatusJSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		}()
		c.Next()
	}
}
