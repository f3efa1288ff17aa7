package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/geografia"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/pkg/logger"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

// CiudadHandler exposes the city endpoints under /ciudad.
type CiudadHandler struct {
	svc *geografia.CiudadService
}

func NewCiudadHandler(s *geografia.CiudadService) *CiudadHandler { return &CiudadHandler{svc: s} }

func (h *CiudadHandler) Register(rg *gin.RouterGroup, autorizacion gin.HandlerFunc) {
	g := rg.Group("/ciudad", autorizacion)
	g.GET("", h.ObtenerTodos)
	g.GET("/paginado", h.ObtenerPaginado)
	g.GET("/por-departamento/:departamentoId", h.ObtenerPorDepartamento)
	g.GET("/:id", h.ObtenerPorID)
	g.POST("", h.Crear)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)
}

func (h *CiudadHandler) ObtenerTodos(c *gin.Context) {
	lista, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		logger.Errorf("no se pudieron obtener las ciudades: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Ciudades", "", lista))
}

func (h *CiudadHandler) ObtenerPorID(c *gin.Context) {
	ciudad, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo obtener la ciudad %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	if ciudad == nil {
		c.JSON(http.StatusNotFound, respuesta.NoEncontrado("Ciudad"))
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Ciudad", "", ciudad))
}

func (h *CiudadHandler) ObtenerPorDepartamento(c *gin.Context) {
	lista, err := h.svc.ObtenerPorDepartamento(c.Request.Context(), c.Param("departamentoId"))
	if err != nil {
		logger.Errorf("no se pudieron obtener las ciudades del departamento %s: %v", c.Param("departamentoId"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Ciudades", "", lista))
}

func (h *CiudadHandler) ObtenerPaginado(c *gin.Context) {
	pagina, elementos, busqueda := parametrosPaginacion(c)
	pag, err := h.svc.ObtenerPaginado(c.Request.Context(), pagina, elementos, c.Query("departamentoId"), busqueda)
	if err != nil {
		logger.Errorf("no se pudo paginar ciudades: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Ciudades", "", pag))
}

func (h *CiudadHandler) Crear(c *gin.Context) {
	var in geografia.CiudadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Creación fallida",
			"Los datos de la ciudad son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Crear(c.Request.Context(), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo crear la ciudad '%s': %v", in.Nombre, err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *CiudadHandler) Actualizar(c *gin.Context) {
	var in geografia.CiudadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Actualización fallida",
			"Los datos de la ciudad son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo actualizar la ciudad %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *CiudadHandler) Eliminar(c *gin.Context) {
	r, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo eliminar la ciudad %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}
