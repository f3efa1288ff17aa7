package usuarios

import "time"

// Usuario is an application user. Contrasena holds a bcrypt hash and is
// never serialized.
type Usuario struct {
	ID                string     `bson:"_id" json:"id"`
	NombreUsuario     string     `bson:"nombreUsuario" json:"nombreUsuario"`
	Contrasena        string     `bson:"contrasena" json:"-"`
	Nombre            string     `bson:"nombre" json:"nombre"`
	Apellido          string     `bson:"apellido" json:"apellido"`
	Email             string     `bson:"email" json:"email"`
	Activo            bool       `bson:"activo" json:"activo"`
	FechaCreacion     time.Time  `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaUltimoAcceso *time.Time `bson:"fechaUltimoAcceso,omitempty" json:"fechaUltimoAcceso,omitempty"`
}
