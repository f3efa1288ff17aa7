package logs

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository collects entries in memory for tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	entradas []Log
}

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (r *MemoryRepository) Insertar(ctx context.Context, l *Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entradas = append(r.entradas, *l)
	return nil
}

func (r *MemoryRepository) ObtenerDesde(ctx context.Context, desde time.Time) ([]Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Log{}
	for _, l := range r.entradas {
		if !l.Fecha.Before(desde) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Entradas returns a snapshot of everything recorded. Test helper.
func (r *MemoryRepository) Entradas() []Log {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Log, len(r.entradas))
	copy(out, r.entradas)
	return out
}
