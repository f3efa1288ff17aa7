package logs

import (
	"context"
	"time"

	"github.com/geotrack/geotrack-api/pkg/logger"
)

// Service records audit entries. None of its methods return an error: a
// persistence failure must never block or alter the request path, so it
// degrades to a process-local log line.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Registrar appends an entry with an explicit tipo (the request-audit step
// uses the HTTP status code here).
func (s *Service) Registrar(ctx context.Context, idUsuario *string, ip, accion, detalle, tipo string) {
	l := &Log{
		IDUsuario: idUsuario,
		IP:        ip,
		Accion:    accion,
		Detalle:   detalle,
		Tipo:      tipo,
		Fecha:     time.Now().UTC(),
	}
	if err := s.repo.Insertar(ctx, l); err != nil {
		logger.Errorf("no se pudo registrar log de auditoría (accion=%s tipo=%s): %v", accion, tipo, err)
	}
}

// Accion records a completed user action.
func (s *Service) Accion(ctx context.Context, idUsuario *string, ip, accion, detalle string) {
	s.Registrar(ctx, idUsuario, ip, accion, detalle, TipoAccion)
}

// Info records an informational event, e.g. a failed login attempt.
func (s *Service) Info(ctx context.Context, idUsuario *string, ip, accion, detalle string) {
	s.Registrar(ctx, idUsuario, ip, accion, detalle, TipoInfo)
}

// Error records a fault with its real message. Client responses carry the
// generic envelope instead.
func (s *Service) Error(ctx context.Context, idUsuario *string, ip, accion, detalle string) {
	s.Registrar(ctx, idUsuario, ip, accion, detalle, TipoError)
}
