package respuesta

// RespuestaDto is the single response envelope used by every endpoint,
// success and failure alike.
type RespuestaDto struct {
	Exito     bool        `json:"exito"`
	Titulo    string      `json:"titulo"`
	Mensaje   string      `json:"mensaje"`
	Detalle   *string     `json:"detalle"`
	Resultado interface{} `json:"resultado"`
}

// Exitoso builds a success envelope with an optional payload.
func Exitoso(titulo, mensaje string, resultado interface{}) *RespuestaDto {
	return &RespuestaDto{Exito: true, Titulo: titulo, Mensaje: mensaje, Resultado: resultado}
}

// ParametrosIncorrectos builds a business/validation failure envelope.
func ParametrosIncorrectos(titulo, detalle string) *RespuestaDto {
	return &RespuestaDto{
		Exito:   false,
		Titulo:  titulo,
		Mensaje: "La solicitud no pudo ser procesada",
		Detalle: &detalle,
	}
}

// TituloNoEncontrado marks a missing-entity envelope; the HTTP layer maps it
// to 404 instead of 400.
const TituloNoEncontrado = "No encontrado"

// NoEncontrado builds the 404 envelope for a missing entity.
func NoEncontrado(entidad string) *RespuestaDto {
	detalle := entidad + " no encontrado"
	return &RespuestaDto{
		Exito:   false,
		Titulo:  TituloNoEncontrado,
		Mensaje: "El recurso solicitado no existe",
		Detalle: &detalle,
	}
}

// EsNoEncontrado reports whether the envelope describes a missing entity.
func (r *RespuestaDto) EsNoEncontrado() bool {
	return !r.Exito && r.Titulo == TituloNoEncontrado
}

// ErrorInterno builds the generic 500 envelope. The optional detail is kept
// out of the message so internals never leak to clients unless a caller
// decides otherwise.
func ErrorInterno(detalle ...string) *RespuestaDto {
	r := &RespuestaDto{
		Exito:   false,
		Titulo:  "Error interno",
		Mensaje: "Ha ocurrido un error inesperado. Intente nuevamente más tarde",
	}
	if len(detalle) > 0 && detalle[0] != "" {
		r.Detalle = &detalle[0]
	}
	return r
}

// PaginacionDto carries one page of results. An empty dataset yields
// TotalRegistros=0, TotalPaginas=0 and an empty (non-nil) Lista.
type PaginacionDto[T any] struct {
	Pagina             int   `json:"pagina"`
	ElementosPorPagina int   `json:"elementosPorPagina"`
	TotalRegistros     int64 `json:"totalRegistros"`
	TotalPaginas       int   `json:"totalPaginas"`
	Lista              []T   `json:"lista"`
}

// NuevaPaginacion normalizes the page parameters and computes the page count.
func NuevaPaginacion[T any](pagina, elementosPorPagina int, total int64, lista []T) *PaginacionDto[T] {
	if pagina < 1 {
		pagina = 1
	}
	if elementosPorPagina < 1 {
		elementosPorPagina = 10
	}
	totalPaginas := int((total + int64(elementosPorPagina) - 1) / int64(elementosPorPagina))
	if lista == nil {
		lista = []T{}
	}
	return &PaginacionDto[T]{
		Pagina:             pagina,
		ElementosPorPagina: elementosPorPagina,
		TotalRegistros:     total,
		TotalPaginas:       totalPaginas,
		Lista:              lista,
	}
}
