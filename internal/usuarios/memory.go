package usuarios

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests and local use.
type MemoryRepository struct {
	mu    sync.RWMutex
	porID map[string]*Usuario
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{porID: make(map[string]*Usuario)}
}

func (r *MemoryRepository) ObtenerPorNombre(ctx context.Context, nombreUsuario string) (*Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.porID {
		if u.NombreUsuario == nombreUsuario {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) ObtenerPorID(ctx context.Context, id string) (*Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryRepository) Crear(ctx context.Context, u *Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.porID[u.ID] = &cp
	return nil
}

func (r *MemoryRepository) ActualizarUltimoAcceso(ctx context.Context, id string, fecha time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.porID[id]; ok {
		u.FechaUltimoAcceso = &fecha
	}
	return nil
}
