package logs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoFallidoServicio struct{}

func (r *repoFallidoServicio) Insertar(ctx context.Context, l *Log) error {
	return errors.New("colección no disponible")
}

func (r *repoFallidoServicio) ObtenerDesde(ctx context.Context, desde time.Time) ([]Log, error) {
	return nil, errors.New("colección no disponible")
}

func TestAccionRegistraEntrada(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo)

	usuario := "user-1"
	svc.Accion(ctx, &usuario, "10.0.0.1", "Login", "Login exitoso")
	svc.Info(ctx, nil, "10.0.0.1", "Login", "Login fallido")
	svc.Error(ctx, nil, "10.0.0.1", "POST /api/auth/login", "pánico en handler")

	entradas := repo.Entradas()
	require.Len(t, entradas, 3)
	assert.Equal(t, TipoAccion, entradas[0].Tipo)
	require.NotNil(t, entradas[0].IDUsuario)
	assert.Equal(t, "user-1", *entradas[0].IDUsuario)
	assert.Equal(t, TipoInfo, entradas[1].Tipo)
	assert.Nil(t, entradas[1].IDUsuario)
	assert.Equal(t, TipoError, entradas[2].Tipo)
	assert.False(t, entradas[0].Fecha.IsZero())
}

func TestFalloDePersistenciaNoSePropaga(t *testing.T) {
	svc := NewService(&repoFallidoServicio{})

	// must not panic nor surface the repository error
	svc.Error(context.Background(), nil, "10.0.0.1", "Login", "detalle")
	svc.Accion(context.Background(), nil, "10.0.0.1", "Login", "detalle")
}
