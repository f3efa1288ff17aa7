package tokens

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service implements the opaque session-token lifecycle: issue, validate,
// extend, revoke. The store, not the signed bearer token, is the source of
// truth for liveness.
type Service struct {
	repo  Repository
	ttl   time.Duration
	ahora func() time.Time
}

func NewService(r Repository, ttl time.Duration) *Service {
	return &Service{repo: r, ttl: ttl, ahora: time.Now}
}

// Generar issues a fresh live token bound to the user and the caller's IP.
func (s *Service) Generar(ctx context.Context, idUsuario, ip string) (string, error) {
	now := s.ahora().UTC()
	t := &Token{
		ID:              uuid.NewString(),
		IDUsuario:       idUsuario,
		IP:              ip,
		FechaCreacion:   now,
		FechaExpiracion: now.Add(s.ttl),
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// EsValido fails closed: the token must be live, unexpired, owned by the
// given user and presented from the IP it was issued to. Expiry is detected
// lazily here and archives the token.
func (s *Service) EsValido(ctx context.Context, id, idUsuario, ip string) (ValidoDto, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return ValidoDto{}, err
	}
	if t == nil {
		return ValidoDto{Valido: false}, nil
	}
	now := s.ahora().UTC()
	if !t.FechaExpiracion.After(now) {
		// lazy expiry: best effort, the verdict does not depend on it
		_, _ = s.repo.Archivar(ctx, id, MotivoExpirado, now)
		return ValidoDto{Valido: false}, nil
	}
	if t.IDUsuario != idUsuario || t.IP != ip {
		return ValidoDto{Valido: false}, nil
	}
	return ValidoDto{Valido: true}, nil
}

// AumentarTiempoExpiracion resets the expiry to now + TTL (sliding session).
// Idempotent, and a no-op when the token no longer exists: the repository
// re-checks existence so a revoked token can never be resurrected.
func (s *Service) AumentarTiempoExpiracion(ctx context.Context, id string) error {
	return s.repo.ActualizarExpiracion(ctx, id, s.ahora().UTC().Add(s.ttl))
}

// Cancelar revokes the token, archiving it with motive "logout". Returns
// false without error when the token was already gone.
func (s *Service) Cancelar(ctx context.Context, id string) (bool, error) {
	return s.repo.Archivar(ctx, id, MotivoLogout, s.ahora().UTC())
}
