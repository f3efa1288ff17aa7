package geografia

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geotrack/geotrack-api/internal/respuesta"
)

// Input payloads bound by the handlers.

type PaisInput struct {
	Nombre    string `json:"nombre" binding:"required"`
	CodigoISO string `json:"codigoIso" binding:"required"`
	Activo    *bool  `json:"activo"`
}

type DepartamentoInput struct {
	Nombre string `json:"nombre" binding:"required"`
	PaisID string `json:"paisId" binding:"required"`
	Activo *bool  `json:"activo"`
}

type CiudadInput struct {
	Nombre         string `json:"nombre" binding:"required"`
	DepartamentoID string `json:"departamentoId" binding:"required"`
	CodigoPostal   string `json:"codigoPostal"`
	Activo         *bool  `json:"activo"`
}

// PaisService implements the country operations. Mutations return the
// uniform envelope; only infrastructure faults surface as errors.
type PaisService struct {
	paises        PaisRepository
	departamentos DepartamentoRepository
}

func NewPaisService(p PaisRepository, d DepartamentoRepository) *PaisService {
	return &PaisService{paises: p, departamentos: d}
}

func (s *PaisService) ObtenerTodos(ctx context.Context) ([]Pais, error) {
	return s.paises.ObtenerTodos(ctx)
}

func (s *PaisService) ObtenerPorID(ctx context.Context, id string) (*Pais, error) {
	return s.paises.ObtenerPorID(ctx, id)
}

func (s *PaisService) Crear(ctx context.Context, in PaisInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	if existe, err := s.paises.ExistePorNombre(ctx, in.Nombre, ""); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			fmt.Sprintf("Ya existe un país con el nombre '%s'", in.Nombre)), nil
	}
	codigo := strings.ToUpper(in.CodigoISO)
	if existe, err := s.paises.ExistePorCodigo(ctx, codigo, ""); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			fmt.Sprintf("Ya existe un país con el código '%s'", codigo)), nil
	}
	p := &Pais{
		ID:            uuid.NewString(),
		Nombre:        in.Nombre,
		CodigoISO:     codigo,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
		CreadoPorID:   &usuarioID,
	}
	if err := s.paises.Insertar(ctx, p); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("País creado",
		fmt.Sprintf("El país '%s' ha sido creado correctamente", p.Nombre), p), nil
}

func (s *PaisService) Actualizar(ctx context.Context, id string, in PaisInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	p, err := s.paises.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return respuesta.NoEncontrado("País"), nil
	}
	if existe, err := s.paises.ExistePorNombre(ctx, in.Nombre, id); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Actualización fallida",
			fmt.Sprintf("Ya existe un país con el nombre '%s'", in.Nombre)), nil
	}
	codigo := strings.ToUpper(in.CodigoISO)
	if existe, err := s.paises.ExistePorCodigo(ctx, codigo, id); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Actualización fallida",
			fmt.Sprintf("Ya existe un país con el código '%s'", codigo)), nil
	}
	p.Nombre = in.Nombre
	p.CodigoISO = codigo
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	now := time.Now().UTC()
	p.FechaModificacion = &now
	p.ModificadoPorID = &usuarioID
	if err := s.paises.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("País actualizado",
		fmt.Sprintf("El país '%s' ha sido actualizado correctamente", p.Nombre), p), nil
}

// Eliminar deactivates the country. Countries with active departments
// cannot be removed.
func (s *PaisService) Eliminar(ctx context.Context, id string) (*respuesta.RespuestaDto, error) {
	p, err := s.paises.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return respuesta.NoEncontrado("País"), nil
	}
	tiene, err := s.departamentos.ExistenActivosPorPais(ctx, id)
	if err != nil {
		return nil, err
	}
	if tiene {
		return respuesta.ParametrosIncorrectos("Eliminación fallida",
			fmt.Sprintf("No se puede eliminar el país '%s' porque tiene departamentos asociados", p.Nombre)), nil
	}
	p.Activo = false
	now := time.Now().UTC()
	p.FechaModificacion = &now
	if err := s.paises.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("País eliminado",
		fmt.Sprintf("El país '%s' ha sido eliminado correctamente", p.Nombre), nil), nil
}

func (s *PaisService) ObtenerPaginado(ctx context.Context, pagina, elementos int, busqueda string) (*respuesta.PaginacionDto[Pais], error) {
	total, lista, err := s.paises.ObtenerPaginado(ctx, pagina, elementos, busqueda)
	if err != nil {
		return nil, err
	}
	return respuesta.NuevaPaginacion(pagina, elementos, total, lista), nil
}

// DepartamentoService implements the department operations.
type DepartamentoService struct {
	departamentos DepartamentoRepository
	paises        PaisRepository
	ciudades      CiudadRepository
}

func NewDepartamentoService(d DepartamentoRepository, p PaisRepository, c CiudadRepository) *DepartamentoService {
	return &DepartamentoService{departamentos: d, paises: p, ciudades: c}
}

func (s *DepartamentoService) ObtenerTodos(ctx context.Context) ([]Departamento, error) {
	return s.departamentos.ObtenerTodos(ctx)
}

func (s *DepartamentoService) ObtenerPorID(ctx context.Context, id string) (*Departamento, error) {
	return s.departamentos.ObtenerPorID(ctx, id)
}

// ObtenerPorPais lists the active departments of a country.
func (s *DepartamentoService) ObtenerPorPais(ctx context.Context, paisID string) ([]Departamento, error) {
	return s.departamentos.ObtenerPorPais(ctx, paisID)
}

func (s *DepartamentoService) Crear(ctx context.Context, in DepartamentoInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	pais, err := s.paises.ObtenerPorID(ctx, in.PaisID)
	if err != nil {
		return nil, err
	}
	if pais == nil || !pais.Activo {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			"El país indicado no existe o está inactivo"), nil
	}
	if existe, err := s.departamentos.ExistePorNombreEnPais(ctx, in.Nombre, in.PaisID, ""); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			fmt.Sprintf("Ya existe un departamento con el nombre '%s' en el país", in.Nombre)), nil
	}
	d := &Departamento{
		ID:            uuid.NewString(),
		Nombre:        in.Nombre,
		PaisID:        in.PaisID,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
		CreadoPorID:   &usuarioID,
	}
	if err := s.departamentos.Insertar(ctx, d); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Departamento creado",
		fmt.Sprintf("El departamento '%s' ha sido creado correctamente", d.Nombre), d), nil
}

func (s *DepartamentoService) Actualizar(ctx context.Context, id string, in DepartamentoInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	d, err := s.departamentos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return respuesta.NoEncontrado("Departamento"), nil
	}
	if existe, err := s.departamentos.ExistePorNombreEnPais(ctx, in.Nombre, in.PaisID, id); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Actualización fallida",
			fmt.Sprintf("Ya existe un departamento con el nombre '%s' en el país", in.Nombre)), nil
	}
	d.Nombre = in.Nombre
	d.PaisID = in.PaisID
	if in.Activo != nil {
		d.Activo = *in.Activo
	}
	now := time.Now().UTC()
	d.FechaModificacion = &now
	d.ModificadoPorID = &usuarioID
	if err := s.departamentos.Actualizar(ctx, d); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Departamento actualizado",
		fmt.Sprintf("El departamento '%s' ha sido actualizado correctamente", d.Nombre), d), nil
}

func (s *DepartamentoService) Eliminar(ctx context.Context, id string) (*respuesta.RespuestaDto, error) {
	d, err := s.departamentos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return respuesta.NoEncontrado("Departamento"), nil
	}
	tiene, err := s.ciudades.ExistenActivasPorDepartamento(ctx, id)
	if err != nil {
		return nil, err
	}
	if tiene {
		return respuesta.ParametrosIncorrectos("Eliminación fallida",
			fmt.Sprintf("No se puede eliminar el departamento '%s' porque tiene ciudades asociadas", d.Nombre)), nil
	}
	d.Activo = false
	now := time.Now().UTC()
	d.FechaModificacion = &now
	if err := s.departamentos.Actualizar(ctx, d); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Departamento eliminado",
		fmt.Sprintf("El departamento '%s' ha sido eliminado correctamente", d.Nombre), nil), nil
}

func (s *DepartamentoService) ObtenerPaginado(ctx context.Context, pagina, elementos int, paisID, busqueda string) (*respuesta.PaginacionDto[Departamento], error) {
	total, lista, err := s.departamentos.ObtenerPaginado(ctx, pagina, elementos, paisID, busqueda)
	if err != nil {
		return nil, err
	}
	return respuesta.NuevaPaginacion(pagina, elementos, total, lista), nil
}

// CiudadService implements the city operations.
type CiudadService struct {
	ciudades      CiudadRepository
	departamentos DepartamentoRepository
}

func NewCiudadService(c CiudadRepository, d DepartamentoRepository) *CiudadService {
	return &CiudadService{ciudades: c, departamentos: d}
}

func (s *CiudadService) ObtenerTodos(ctx context.Context) ([]Ciudad, error) {
	return s.ciudades.ObtenerTodos(ctx)
}

func (s *CiudadService) ObtenerPorID(ctx context.Context, id string) (*Ciudad, error) {
	return s.ciudades.ObtenerPorID(ctx, id)
}

// ObtenerPorDepartamento lists the active cities of a department.
func (s *CiudadService) ObtenerPorDepartamento(ctx context.Context, departamentoID string) ([]Ciudad, error) {
	return s.ciudades.ObtenerPorDepartamento(ctx, departamentoID)
}

func (s *CiudadService) Crear(ctx context.Context, in CiudadInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	dep, err := s.departamentos.ObtenerPorID(ctx, in.DepartamentoID)
	if err != nil {
		return nil, err
	}
	if dep == nil || !dep.Activo {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			"El departamento indicado no existe o está inactivo"), nil
	}
	if existe, err := s.ciudades.ExistePorNombreEnDepartamento(ctx, in.Nombre, in.DepartamentoID, ""); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Creación fallida",
			fmt.Sprintf("Ya existe una ciudad con el nombre '%s' en el departamento", in.Nombre)), nil
	}
	c := &Ciudad{
		ID:             uuid.NewString(),
		Nombre:         in.Nombre,
		DepartamentoID: in.DepartamentoID,
		CodigoPostal:   in.CodigoPostal,
		Activo:         true,
		FechaCreacion:  time.Now().UTC(),
		CreadoPorID:    &usuarioID,
	}
	if err := s.ciudades.Insertar(ctx, c); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Ciudad creada",
		fmt.Sprintf("La ciudad '%s' ha sido creada correctamente", c.Nombre), c), nil
}

func (s *CiudadService) Actualizar(ctx context.Context, id string, in CiudadInput, usuarioID string) (*respuesta.RespuestaDto, error) {
	c, err := s.ciudades.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return respuesta.NoEncontrado("Ciudad"), nil
	}
	if existe, err := s.ciudades.ExistePorNombreEnDepartamento(ctx, in.Nombre, in.DepartamentoID, id); err != nil {
		return nil, err
	} else if existe {
		return respuesta.ParametrosIncorrectos("Actualización fallida",
			fmt.Sprintf("Ya existe una ciudad con el nombre '%s' en el departamento", in.Nombre)), nil
	}
	c.Nombre = in.Nombre
	c.DepartamentoID = in.DepartamentoID
	c.CodigoPostal = in.CodigoPostal
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	now := time.Now().UTC()
	c.FechaModificacion = &now
	c.ModificadoPorID = &usuarioID
	if err := s.ciudades.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Ciudad actualizada",
		fmt.Sprintf("La ciudad '%s' ha sido actualizada correctamente", c.Nombre), c), nil
}

func (s *CiudadService) Eliminar(ctx context.Context, id string) (*respuesta.RespuestaDto, error) {
	c, err := s.ciudades.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return respuesta.NoEncontrado("Ciudad"), nil
	}
	c.Activo = false
	now := time.Now().UTC()
	c.FechaModificacion = &now
	if err := s.ciudades.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return respuesta.Exitoso("Ciudad eliminada",
		fmt.Sprintf("La ciudad '%s' ha sido eliminada correctamente", c.Nombre), nil), nil
}

func (s *CiudadService) ObtenerPaginado(ctx context.Context, pagina, elementos int, departamentoID, busqueda string) (*respuesta.PaginacionDto[Ciudad], error) {
	total, lista, err := s.ciudades.ObtenerPaginado(ctx, pagina, elementos, departamentoID, busqueda)
	if err != nil {
		return nil, err
	}
	return respuesta.NuevaPaginacion(pagina, elementos, total, lista), nil
}
