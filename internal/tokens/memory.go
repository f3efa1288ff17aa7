package tokens

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps live and archived tokens in maps guarded by a single
// mutex, so the archive move is atomic like the Mongo transaction.
type MemoryRepository struct {
	mu         sync.RWMutex
	vivos      map[string]*Token
	archivados map[string]*TokenExpirado
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		vivos:      make(map[string]*Token),
		archivados: make(map[string]*TokenExpirado),
	}
}

func (r *MemoryRepository) Crear(ctx context.Context, t *Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.vivos[t.ID] = &cp
	return nil
}

func (r *MemoryRepository) ObtenerPorID(ctx context.Context, id string) (*Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.vivos[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryRepository) ActualizarExpiracion(ctx context.Context, id string, hasta time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.vivos[id]; ok {
		t.FechaExpiracion = hasta
	}
	return nil
}

func (r *MemoryRepository) Archivar(ctx context.Context, id, motivo string, fecha time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.vivos[id]
	if !ok {
		return false, nil
	}
	delete(r.vivos, id)
	r.archivados[id] = &TokenExpirado{
		ID:              t.ID,
		IDUsuario:       t.IDUsuario,
		IP:              t.IP,
		FechaCreacion:   t.FechaCreacion,
		FechaExpiracion: t.FechaExpiracion,
		Motivo:          motivo,
		FechaArchivado:  fecha,
	}
	return true, nil
}

// Archivado reports whether the id sits in the archive. Test helper.
func (r *MemoryRepository) Archivado(id string) (*TokenExpirado, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.archivados[id]
	return e, ok
}
