package logs

import "time"

// Severity tags. Pipeline entries additionally use the HTTP status code as
// the tipo, matching the request-audit convention.
const (
	TipoAccion = "accion"
	TipoInfo   = "info"
	TipoError  = "error"
)

// Log is one append-only audit entry. IDUsuario is nil for anonymous
// actions such as failed logins.
type Log struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	IDUsuario *string   `bson:"idUsuario,omitempty" json:"idUsuario,omitempty"`
	IP        string    `bson:"ip" json:"ip"`
	Accion    string    `bson:"accion" json:"accion"`
	Detalle   string    `bson:"detalle" json:"detalle"`
	Tipo      string    `bson:"tipo" json:"tipo"`
	Fecha     time.Time `bson:"fecha" json:"fecha"`
}
