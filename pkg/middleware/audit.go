package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/geotrack/geotrack-api/internal/logs"
)

// usuarioParaAuditoria resolves the user id to attach to an audit entry:
// the authorized subject when the claims guard ran, otherwise the legacy
// IdUsuario correlation header. The header is never trusted for
// authorization; a malformed value simply means anonymous.
func usuarioParaAuditoria(c *gin.Context) *string {
	if id, ok := UsuarioAutenticado(c); ok {
		return &id
	}
	if crudo := c.GetHeader("IdUsuario"); crudo != "" {
		if parsed, err := uuid.Parse(crudo); err == nil {
			id := parsed.String()
			return &id
		}
	}
	return nil
}

// Auditoria records one entry per API request after the handler finishes,
// whatever the outcome. Unauthorized responses are skipped; the access gate
// and claims guard already write their own entries.
func Auditoria(auditoria *logs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		estado := c.Writer.Status()
		if estado == http.StatusUnauthorized {
			return
		}

		detalle := fmt.Sprintf("Tiempo: %dms - Estado: %d",
			time.Since(inicio).Milliseconds(), estado)
		auditoria.Registrar(c.Request.Context(), usuarioParaAuditoria(c), c.ClientIP(),
			c.Request.Method+" "+c.Request.URL.Path, detalle, strconv.Itoa(estado))
	}
}
