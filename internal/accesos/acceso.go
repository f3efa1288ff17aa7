package accesos

import "time"

// Acceso is a provisioned site credential. Rows are immutable once created
// except for deactivation.
type Acceso struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	Sitio             string     `bson:"sitio" json:"sitio"`
	Contrasena        string     `bson:"contrasena" json:"-"` // bcrypt hash
	Activo            bool       `bson:"activo" json:"activo"`
	FechaCreacion     time.Time  `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaModificacion *time.Time `bson:"fechaModificacion,omitempty" json:"fechaModificacion,omitempty"`
}
