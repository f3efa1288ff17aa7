package accesos

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service validates site credentials against provisioned accesses.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// ValidarAcceso returns true only when an active credential exists for the
// site and the supplied key matches its stored hash. Blank inputs fail
// without touching the store. The bcrypt comparison is constant-time.
func (s *Service) ValidarAcceso(ctx context.Context, sitio, clave string) (bool, error) {
	if sitio == "" || clave == "" {
		return false, nil
	}
	a, err := s.repo.ObtenerPorSitio(ctx, sitio)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Contrasena), []byte(clave)); err != nil {
		return false, nil
	}
	return true, nil
}

// Provisionar registers a new site credential, hashing the supplied key.
func (s *Service) Provisionar(ctx context.Context, sitio, clave string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Crear(ctx, &Acceso{
		Sitio:         sitio,
		Contrasena:    string(hash),
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	})
}
