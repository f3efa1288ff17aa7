package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/geografia"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/pkg/logger"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

// PaisHandler exposes the country endpoints under /pais.
type PaisHandler struct {
	svc *geografia.PaisService
}

func NewPaisHandler(s *geografia.PaisService) *PaisHandler { return &PaisHandler{svc: s} }

func (h *PaisHandler) Register(rg *gin.RouterGroup, autorizacion gin.HandlerFunc) {
	g := rg.Group("/pais", autorizacion)
	g.GET("", h.ObtenerTodos)
	g.GET("/paginado", h.ObtenerPaginado)
	g.GET("/:id", h.ObtenerPorID)
	g.POST("", h.Crear)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)
}

func (h *PaisHandler) ObtenerTodos(c *gin.Context) {
	lista, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		logger.Errorf("no se pudieron obtener los países: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Países", "", lista))
}

func (h *PaisHandler) ObtenerPorID(c *gin.Context) {
	p, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo obtener el país %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, respuesta.NoEncontrado("País"))
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("País", "", p))
}

func (h *PaisHandler) ObtenerPaginado(c *gin.Context) {
	pagina, elementos, busqueda := parametrosPaginacion(c)
	pag, err := h.svc.ObtenerPaginado(c.Request.Context(), pagina, elementos, busqueda)
	if err != nil {
		logger.Errorf("no se pudo paginar países: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Países", "", pag))
}

func (h *PaisHandler) Crear(c *gin.Context) {
	var in geografia.PaisInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Creación fallida",
			"Los datos del país son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Crear(c.Request.Context(), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo crear el país '%s': %v", in.Nombre, err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *PaisHandler) Actualizar(c *gin.Context) {
	var in geografia.PaisInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Actualización fallida",
			"Los datos del país son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo actualizar el país %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *PaisHandler) Eliminar(c *gin.Context) {
	r, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo eliminar el país %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}
