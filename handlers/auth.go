package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/internal/tokens"
	"github.com/geotrack/geotrack-api/internal/usuarios"
	"github.com/geotrack/geotrack-api/pkg/metrics"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

type LoginRequest struct {
	NombreUsuario string `json:"nombreUsuario" binding:"required"`
	Contrasena    string `json:"contrasena" binding:"required"`
}

type RegistroRequest struct {
	NombreUsuario string `json:"nombreUsuario" binding:"required"`
	Contrasena    string `json:"contrasena" binding:"required,min=8"`
	Nombre        string `json:"nombre" binding:"required"`
	Apellido      string `json:"apellido" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
}

// LoginResultado is the success payload: the signed bearer token plus the
// authenticated user.
type LoginResultado struct {
	Token   string            `json:"token"`
	Usuario *usuarios.Usuario `json:"usuario"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	usuariosSvc *usuarios.Service
	tokensSvc   *tokens.Service
	firmador    *tokens.Firmador
	auditoria   *logs.Service
}

func NewAuthHandler(u *usuarios.Service, t *tokens.Service, f *tokens.Firmador, a *logs.Service) *AuthHandler {
	return &AuthHandler{usuariosSvc: u, tokensSvc: t, firmador: f, auditoria: a}
}

// Register routes under /auth. Credential-issuing endpoints sit behind the
// site-access gate; the rest behind the session guard.
func (h *AuthHandler) Register(rg *gin.RouterGroup, acceso, autorizacion gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", acceso, h.Login)
	a.POST("/registro", acceso, autorizacion, h.Registro)
	a.GET("/perfil", autorizacion, h.Perfil)
	a.POST("/logout", autorizacion, h.Logout)
}

// Login authenticates the user and issues a fresh session: an opaque token
// bound to the caller's IP, wrapped in a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Autenticación fallida",
			"Se deben enviar el usuario y la contraseña"))
		return
	}

	u, err := h.usuariosSvc.Autenticar(c.Request.Context(), req.NombreUsuario, req.Contrasena)
	if err != nil {
		if errors.Is(err, usuarios.ErrCredenciales) || errors.Is(err, usuarios.ErrUsuarioInactivo) {
			metrics.Logins.WithLabelValues("fallido").Inc()
			h.auditoria.Info(c.Request.Context(), nil, c.ClientIP(), "Login",
				"Intento de inicio de sesión fallido para '"+req.NombreUsuario+"': "+err.Error())
			c.JSON(http.StatusBadRequest,
				respuesta.ParametrosIncorrectos("Autenticación fallida", err.Error()))
			return
		}
		h.errorInterno(c, "Login", err)
		return
	}

	idToken, err := h.tokensSvc.Generar(c.Request.Context(), u.ID, c.ClientIP())
	if err != nil {
		h.errorInterno(c, "Login", err)
		return
	}
	bearer, err := h.firmador.Emitir(idToken, u.ID)
	if err != nil {
		h.errorInterno(c, "Login", err)
		return
	}

	metrics.Logins.WithLabelValues("exitoso").Inc()
	h.auditoria.Accion(c.Request.Context(), &u.ID, c.ClientIP(), "Login", "Inicio de sesión exitoso")
	c.JSON(http.StatusOK, respuesta.Exitoso("Autenticación exitosa",
		"Bienvenido "+u.Nombre, &LoginResultado{Token: bearer, Usuario: u}))
}

// Registro creates a new user. Requires an authenticated session besides the
// site-access gate.
func (h *AuthHandler) Registro(c *gin.Context) {
	var req RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, respuesta.ParametrosIncorrectos("Registro fallido",
			"Los datos del usuario son incompletos o inválidos"))
		return
	}

	u, err := h.usuariosSvc.Registrar(c.Request.Context(), req.NombreUsuario, req.Contrasena,
		req.Nombre, req.Apellido, req.Email)
	if err != nil {
		if errors.Is(err, usuarios.ErrNombreDuplicado) {
			c.JSON(http.StatusBadRequest,
				respuesta.ParametrosIncorrectos("Registro fallido", err.Error()))
			return
		}
		h.errorInterno(c, "Registro", err)
		return
	}

	if idActor, ok := middleware.UsuarioAutenticado(c); ok {
		h.auditoria.Accion(c.Request.Context(), &idActor, c.ClientIP(), "Registro",
			"Usuario '"+u.NombreUsuario+"' registrado")
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Usuario registrado",
		"El usuario '"+u.NombreUsuario+"' ha sido registrado correctamente", u))
}

// Perfil returns the authenticated user.
func (h *AuthHandler) Perfil(c *gin.Context) {
	id, ok := middleware.UsuarioAutenticado(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			respuesta.ParametrosIncorrectos("Sesión inválida", "No hay una sesión activa"))
		return
	}
	u, err := h.usuariosSvc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		h.errorInterno(c, "Perfil", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, respuesta.NoEncontrado("Usuario"))
		return
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Perfil", "", u))
}

// Logout revokes the current session token. A second logout with the same
// token fails: the token already moved to the archive.
func (h *AuthHandler) Logout(c *gin.Context) {
	idToken, ok := middleware.TokenDeSesion(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			respuesta.ParametrosIncorrectos("Sesión inválida", "No hay una sesión activa"))
		return
	}
	cancelado, err := h.tokensSvc.Cancelar(c.Request.Context(), idToken)
	if err != nil {
		h.errorInterno(c, "Logout", err)
		return
	}
	if !cancelado {
		c.JSON(http.StatusBadRequest,
			respuesta.ParametrosIncorrectos("Logout fallido", "La sesión ya había sido cerrada"))
		return
	}
	if id, ok := middleware.UsuarioAutenticado(c); ok {
		h.auditoria.Accion(c.Request.Context(), &id, c.ClientIP(), "Logout", "Sesión cerrada")
	}
	c.JSON(http.StatusOK, respuesta.Exitoso("Logout exitoso", "La sesión ha sido cerrada", nil))
}

func (h *AuthHandler) errorInterno(c *gin.Context, accion string, err error) {
	var idUsuario *string
	if id, ok := middleware.UsuarioAutenticado(c); ok {
		idUsuario = &id
	}
	h.auditoria.Error(c.Request.Context(), idUsuario, c.ClientIP(), accion, err.Error())
	c.JSON(http.StatusInternalServerError, respuesta.ErrorInterno())
}
