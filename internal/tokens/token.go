package tokens

import "time"

// Motives recorded when a token is moved into the archive.
const (
	MotivoLogout   = "logout"
	MotivoExpirado = "expirado"
)

// Token is a live opaque session token. It is bound to the user it was
// issued for and to the IP the login came from.
type Token struct {
	ID              string    `bson:"_id" json:"id"`
	IDUsuario       string    `bson:"idUsuario" json:"idUsuario"`
	IP              string    `bson:"ip" json:"ip"`
	FechaCreacion   time.Time `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaExpiracion time.Time `bson:"fechaExpiracion" json:"fechaExpiracion"`
	Observacion     string    `bson:"observacion,omitempty" json:"observacion,omitempty"`
}

// TokenExpirado is the immutable archive record of a token that expired or
// was revoked. A token id lives in exactly one of the two collections.
type TokenExpirado struct {
	ID              string    `bson:"_id" json:"id"`
	IDUsuario       string    `bson:"idUsuario" json:"idUsuario"`
	IP              string    `bson:"ip" json:"ip"`
	FechaCreacion   time.Time `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaExpiracion time.Time `bson:"fechaExpiracion" json:"fechaExpiracion"`
	Motivo          string    `bson:"motivo" json:"motivo"`
	FechaArchivado  time.Time `bson:"fechaArchivado" json:"fechaArchivado"`
}

// ValidoDto is the validation verdict returned by EsValido.
type ValidoDto struct {
	Valido bool `json:"valido"`
}
