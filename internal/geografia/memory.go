package geografia

import (
	"context"
	"sort"
	"strings"
	"sync"
)

func coincide(nombre, busqueda string) bool {
	if busqueda == "" {
		return true
	}
	return strings.Contains(strings.ToLower(nombre), strings.ToLower(busqueda))
}

func paginar[T any](lista []T, pagina, elementos int) []T {
	pagina, elementos = normalizarPagina(pagina, elementos)
	desde := (pagina - 1) * elementos
	if desde >= len(lista) {
		return []T{}
	}
	hasta := desde + elementos
	if hasta > len(lista) {
		hasta = len(lista)
	}
	return lista[desde:hasta]
}

// PaisMemoryRepository is the in-memory PaisRepository for tests.
type PaisMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Pais
}

func NewPaisMemoryRepository() *PaisMemoryRepository {
	return &PaisMemoryRepository{store: make(map[string]*Pais)}
}

func (r *PaisMemoryRepository) ObtenerTodos(ctx context.Context) ([]Pais, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Pais{}
	for _, p := range r.store {
		if p.Activo {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *PaisMemoryRepository) ObtenerPorID(ctx context.Context, id string) (*Pais, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PaisMemoryRepository) Insertar(ctx context.Context, p *Pais) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.store[p.ID] = &cp
	return nil
}

func (r *PaisMemoryRepository) Actualizar(ctx context.Context, p *Pais) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.store[p.ID] = &cp
	return nil
}

func (r *PaisMemoryRepository) ExistePorNombre(ctx context.Context, nombre, exceptoID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.store {
		if p.Nombre == nombre && p.ID != exceptoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *PaisMemoryRepository) ExistePorCodigo(ctx context.Context, codigo, exceptoID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.store {
		if p.CodigoISO == codigo && p.ID != exceptoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *PaisMemoryRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, busqueda string) (int64, []Pais, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	filtrados := []Pais{}
	for _, p := range r.store {
		if coincide(p.Nombre, busqueda) {
			filtrados = append(filtrados, *p)
		}
	}
	sort.Slice(filtrados, func(i, j int) bool { return filtrados[i].Nombre < filtrados[j].Nombre })
	return int64(len(filtrados)), paginar(filtrados, pagina, elementos), nil
}

// DepartamentoMemoryRepository is the in-memory DepartamentoRepository.
type DepartamentoMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Departamento
}

func NewDepartamentoMemoryRepository() *DepartamentoMemoryRepository {
	return &DepartamentoMemoryRepository{store: make(map[string]*Departamento)}
}

func (r *DepartamentoMemoryRepository) ObtenerTodos(ctx context.Context) ([]Departamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Departamento{}
	for _, d := range r.store {
		if d.Activo {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *DepartamentoMemoryRepository) ObtenerPorID(ctx context.Context, id string) (*Departamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DepartamentoMemoryRepository) ObtenerPorPais(ctx context.Context, paisID string) ([]Departamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Departamento{}
	for _, d := range r.store {
		if d.PaisID == paisID && d.Activo {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *DepartamentoMemoryRepository) Insertar(ctx context.Context, d *Departamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.store[d.ID] = &cp
	return nil
}

func (r *DepartamentoMemoryRepository) Actualizar(ctx context.Context, d *Departamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.store[d.ID] = &cp
	return nil
}

func (r *DepartamentoMemoryRepository) ExistePorNombreEnPais(ctx context.Context, nombre, paisID, exceptoID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.store {
		if d.Nombre == nombre && d.PaisID == paisID && d.ID != exceptoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *DepartamentoMemoryRepository) ExistenActivosPorPais(ctx context.Context, paisID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.store {
		if d.PaisID == paisID && d.Activo {
			return true, nil
		}
	}
	return false, nil
}

func (r *DepartamentoMemoryRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, paisID, busqueda string) (int64, []Departamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	filtrados := []Departamento{}
	for _, d := range r.store {
		if (paisID == "" || d.PaisID == paisID) && coincide(d.Nombre, busqueda) {
			filtrados = append(filtrados, *d)
		}
	}
	sort.Slice(filtrados, func(i, j int) bool { return filtrados[i].Nombre < filtrados[j].Nombre })
	return int64(len(filtrados)), paginar(filtrados, pagina, elementos), nil
}

// CiudadMemoryRepository is the in-memory CiudadRepository.
type CiudadMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Ciudad
}

func NewCiudadMemoryRepository() *CiudadMemoryRepository {
	return &CiudadMemoryRepository{store: make(map[string]*Ciudad)}
}

func (r *CiudadMemoryRepository) ObtenerTodos(ctx context.Context) ([]Ciudad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Ciudad{}
	for _, c := range r.store {
		if c.Activo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *CiudadMemoryRepository) ObtenerPorID(ctx context.Context, id string) (*Ciudad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CiudadMemoryRepository) ObtenerPorDepartamento(ctx context.Context, departamentoID string) ([]Ciudad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Ciudad{}
	for _, c := range r.store {
		if c.DepartamentoID == departamentoID && c.Activo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *CiudadMemoryRepository) Insertar(ctx context.Context, c *Ciudad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.store[c.ID] = &cp
	return nil
}

func (r *CiudadMemoryRepository) Actualizar(ctx context.Context, c *Ciudad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.store[c.ID] = &cp
	return nil
}

func (r *CiudadMemoryRepository) ExistePorNombreEnDepartamento(ctx context.Context, nombre, departamentoID, exceptoID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.store {
		if c.Nombre == nombre && c.DepartamentoID == departamentoID && c.ID != exceptoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CiudadMemoryRepository) ExistenActivasPorDepartamento(ctx context.Context, departamentoID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.store {
		if c.DepartamentoID == departamentoID && c.Activo {
			return true, nil
		}
	}
	return false, nil
}

func (r *CiudadMemoryRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, departamentoID, busqueda string) (int64, []Ciudad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	filtrados := []Ciudad{}
	for _, c := range r.store {
		if (departamentoID == "" || c.DepartamentoID == departamentoID) && coincide(c.Nombre, busqueda) {
			filtrados = append(filtrados, *c)
		}
	}
	sort.Slice(filtrados, func(i, j int) bool { return filtrados[i].Nombre < filtrados[j].Nombre })
	return int64(len(filtrados)), paginar(filtrados, pagina, elementos), nil
}
