package geografia

import "context"

// PaisRepository provides country persistence operations.
type PaisRepository interface {
	ObtenerTodos(ctx context.Context) ([]Pais, error)
	ObtenerPorID(ctx context.Context, id string) (*Pais, error)
	Insertar(ctx context.Context, p *Pais) error
	Actualizar(ctx context.Context, p *Pais) error
	ExistePorNombre(ctx context.Context, nombre, exceptoID string) (bool, error)
	ExistePorCodigo(ctx context.Context, codigo, exceptoID string) (bool, error)
	ObtenerPaginado(ctx context.Context, pagina, elementos int, busqueda string) (int64, []Pais, error)
}

// DepartamentoRepository provides department persistence operations.
type DepartamentoRepository interface {
	ObtenerTodos(ctx context.Context) ([]Departamento, error)
	ObtenerPorID(ctx context.Context, id string) (*Departamento, error)
	ObtenerPorPais(ctx context.Context, paisID string) ([]Departamento, error)
	Insertar(ctx context.Context, d *Departamento) error
	Actualizar(ctx context.Context, d *Departamento) error
	ExistePorNombreEnPais(ctx context.Context, nombre, paisID, exceptoID string) (bool, error)
	ExistenActivosPorPais(ctx context.Context, paisID string) (bool, error)
	ObtenerPaginado(ctx context.Context, pagina, elementos int, paisID, busqueda string) (int64, []Departamento, error)
}

// CiudadRepository provides city persistence operations.
type CiudadRepository interface {
	ObtenerTodos(ctx context.Context) ([]Ciudad, error)
	ObtenerPorID(ctx context.Context, id string) (*Ciudad, error)
	ObtenerPorDepartamento(ctx context.Context, departamentoID string) ([]Ciudad, error)
	Insertar(ctx context.Context, c *Ciudad) error
	Actualizar(ctx context.Context, c *Ciudad) error
	ExistePorNombreEnDepartamento(ctx context.Context, nombre, departamentoID, exceptoID string) (bool, error)
	ExistenActivasPorDepartamento(ctx context.Context, departamentoID string) (bool, error)
	ObtenerPaginado(ctx context.Context, pagina, elementos int, departamentoID, busqueda string) (int64, []Ciudad, error)
}
