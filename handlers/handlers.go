package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/respuesta"
)

// escribir maps a business envelope to its HTTP status: success 200,
// not-found 404, anything else 400.
func escribir(c *gin.Context, r *respuesta.RespuestaDto) {
	estado := http.StatusOK
	if !r.Exito {
		if r.EsNoEncontrado() {
			estado = http.StatusNotFound
		} else {
			estado = http.StatusBadRequest
		}
	}
	c.JSON(estado, r)
}

// parametrosPaginacion reads pagina/elementosPorPagina/busqueda with safe
// defaults. Out-of-range values are clamped, never rejected.
func parametrosPaginacion(c *gin.Context) (int, int, string) {
	pagina, err := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	if err != nil || pagina < 1 {
		pagina = 1
	}
	elementos, err := strconv.Atoi(c.DefaultQuery("elementosPorPagina", "10"))
	if err != nil || elementos < 1 {
		elementos = 10
	}
	if elementos > 100 {
		elementos = 100
	}
	return pagina, elementos, c.Query("busqueda")
}
