package usuarios

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarYAutenticar(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo)

	u, err := svc.Registrar(ctx, "maria", "clave123", "María", "Pérez", "maria@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	auth, err := svc.Autenticar(ctx, "maria", "clave123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, auth.ID)
	assert.NotNil(t, auth.FechaUltimoAcceso)
}

func TestAutenticarCredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.Registrar(ctx, "maria", "clave123", "María", "Pérez", "maria@example.com")
	require.NoError(t, err)

	_, err = svc.Autenticar(ctx, "maria", "otra-clave")
	assert.ErrorIs(t, err, ErrCredenciales)

	_, err = svc.Autenticar(ctx, "desconocida", "clave123")
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestAutenticarUsuarioInactivo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo)

	u, err := svc.Registrar(ctx, "maria", "clave123", "María", "Pérez", "maria@example.com")
	require.NoError(t, err)

	// deactivate directly in the fake store
	repo.mu.Lock()
	repo.porID[u.ID].Activo = false
	repo.mu.Unlock()

	_, err = svc.Autenticar(ctx, "maria", "clave123")
	assert.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestRegistrarNombreDuplicado(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.Registrar(ctx, "maria", "clave123", "María", "Pérez", "maria@example.com")
	require.NoError(t, err)

	_, err = svc.Registrar(ctx, "maria", "otra", "Otra", "Persona", "otra@example.com")
	assert.ErrorIs(t, err, ErrNombreDuplicado)
}
