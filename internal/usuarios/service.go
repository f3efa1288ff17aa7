package usuarios

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Business failures. Produced as values, never panicked; handlers map them
// to 400 envelopes.
var (
	ErrCredenciales    = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo = errors.New("el usuario se encuentra inactivo")
	ErrNombreDuplicado = errors.New("ya existe un usuario con ese nombre")
)

// Service encapsulates user business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Autenticar verifies the credentials and stamps the last-access time.
// Wrong user and wrong password are indistinguishable to the caller.
func (s *Service) Autenticar(ctx context.Context, nombreUsuario, contrasena string) (*Usuario, error) {
	u, err := s.repo.ObtenerPorNombre(ctx, nombreUsuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte(contrasena)); err != nil {
		return nil, ErrCredenciales
	}
	if !u.Activo {
		return nil, ErrUsuarioInactivo
	}
	_ = s.repo.ActualizarUltimoAcceso(ctx, u.ID, time.Now().UTC())
	return u, nil
}

// Registrar creates a new active user with a hashed password.
func (s *Service) Registrar(ctx context.Context, nombreUsuario, contrasena, nombre, apellido, email string) (*Usuario, error) {
	existente, err := s.repo.ObtenerPorNombre(ctx, nombreUsuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrNombreDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &Usuario{
		ID:            uuid.NewString(),
		NombreUsuario: nombreUsuario,
		Contrasena:    string(hash),
		Nombre:        nombre,
		Apellido:      apellido,
		Email:         email,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ObtenerPorID(ctx context.Context, id string) (*Usuario, error) {
	return s.repo.ObtenerPorID(ctx, id)
}
