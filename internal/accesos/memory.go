package accesos

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by unit tests and local
// development without MongoDB.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Acceso
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Acceso)}
}

func (r *MemoryRepository) ObtenerPorSitio(ctx context.Context, sitio string) (*Acceso, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.store[sitio]
	if !ok || !a.Activo {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) Crear(ctx context.Context, a *Acceso) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.FechaCreacion.IsZero() {
		a.FechaCreacion = time.Now().UTC()
	}
	cp := *a
	r.store[a.Sitio] = &cp
	return nil
}

func (r *MemoryRepository) Desactivar(ctx context.Context, sitio string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.store[sitio]; ok {
		a.Activo = false
		now := time.Now().UTC()
		a.FechaModificacion = &now
	}
	return nil
}
