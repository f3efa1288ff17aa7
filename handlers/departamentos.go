package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/geografia"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/pkg/logger"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

// DepartamentoHandler exposes the department endpoints under /departamento.
type DepartamentoHandler struct {
	svc *geografia.DepartamentoService
}

func NewDepartamentoHandler(s *geografia.DepartamentoService) *DepartamentoHandler {
	return &DepartamentoHandler{svc: s}
}

func (h *DepartamentoHandler) Register(rg *gin.RouterGroup, autorizacion gin.HandlerFunc) {
	g := rg.Group("/departamento", autorizacion)
	g.GET("", h.ObtenerTodos)
	g.GET("/paginado", h.ObtenerPaginado)
	g.GET("/por-pais/:paisId", h.ObtenerPorPais)
	g.GET("/:id", h.ObtenerPorID)
	g.POST("", h.Crear)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)
}

func (h *DepartamentoHandler) ObtenerTodos(c *gin.Context) {
	lista, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		logger.Errorf("no se pudieron obtener los departamentos: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Departamentos", "", lista))
}

func (h *DepartamentoHandler) ObtenerPorID(c *gin.Context) {
	d, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo obtener el departamento %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, respuesta.NoEncontrado("Departamento"))
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Departamento", "", d))
}

func (h *DepartamentoHandler) ObtenerPorPais(c *gin.Context) {
	lista, err := h.svc.ObtenerPorPais(c.Request.Context(), c.Param("paisId"))
	if err != nil {
		logger.Errorf("no se pudieron obtener los departamentos del país %s: %v", c.Param("paisId"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Departamentos", "", lista))
}

func (h *DepartamentoHandler) ObtenerPaginado(c *gin.Context) {
	pagina, elementos, busqueda := parametrosPaginacion(c)
	pag, err := h.svc.ObtenerPaginado(c.Request.Context(), pagina, elementos, c.Query("paisId"), busqueda)
	if err != nil {
		logger.Errorf("no se pudo paginar departamentos: %v", err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Departamentos", "", pag))
}

func (h *DepartamentoHandler) Crear(c *gin.Context) {
	var in geografia.DepartamentoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Creación fallida",
			"Los datos del departamento son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Crear(c.Request.Context(), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo crear el departamento '%s': %v", in.Nombre, err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *DepartamentoHandler) Actualizar(c *gin.Context) {
	var in geografia.DepartamentoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Actualización fallida",
			"Los datos del departamento son incompletos o inválidos"))
		return
	}
	usuarioID, _ := middleware.UsuarioAutenticado(c)
	r, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), in, usuarioID)
	if err != nil {
		logger.Errorf("no se pudo actualizar el departamento %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}

func (h *DepartamentoHandler) Eliminar(c *gin.Context) {
	r, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Errorf("no se pudo eliminar el departamento %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
		return
	}
	escribir(c, r)
}
