package geografia

import "time"

// Pais is a country in the reference dataset.
type Pais struct {
	ID                string     `bson:"_id" json:"id"`
	Nombre            string     `bson:"nombre" json:"nombre"`
	CodigoISO         string     `bson:"codigoIso" json:"codigoIso"`
	Activo            bool       `bson:"activo" json:"activo"`
	FechaCreacion     time.Time  `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaModificacion *time.Time `bson:"fechaModificacion,omitempty" json:"fechaModificacion,omitempty"`
	CreadoPorID       *string    `bson:"creadoPorId,omitempty" json:"creadoPorId,omitempty"`
	ModificadoPorID   *string    `bson:"modificadoPorId,omitempty" json:"modificadoPorId,omitempty"`
}

// Departamento is a first-level subdivision of a country.
type Departamento struct {
	ID                string     `bson:"_id" json:"id"`
	Nombre            string     `bson:"nombre" json:"nombre"`
	PaisID            string     `bson:"paisId" json:"paisId"`
	Activo            bool       `bson:"activo" json:"activo"`
	FechaCreacion     time.Time  `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaModificacion *time.Time `bson:"fechaModificacion,omitempty" json:"fechaModificacion,omitempty"`
	CreadoPorID       *string    `bson:"creadoPorId,omitempty" json:"creadoPorId,omitempty"`
	ModificadoPorID   *string    `bson:"modificadoPorId,omitempty" json:"modificadoPorId,omitempty"`
}

// Ciudad belongs to a departamento.
type Ciudad struct {
	ID                string     `bson:"_id" json:"id"`
	Nombre            string     `bson:"nombre" json:"nombre"`
	DepartamentoID    string     `bson:"departamentoId" json:"departamentoId"`
	CodigoPostal      string     `bson:"codigoPostal,omitempty" json:"codigoPostal,omitempty"`
	Activo            bool       `bson:"activo" json:"activo"`
	FechaCreacion     time.Time  `bson:"fechaCreacion" json:"fechaCreacion"`
	FechaModificacion *time.Time `bson:"fechaModificacion,omitempty" json:"fechaModificacion,omitempty"`
	CreadoPorID       *string    `bson:"creadoPorId,omitempty" json:"creadoPorId,omitempty"`
	ModificadoPorID   *string    `bson:"modificadoPorId,omitempty" json:"modificadoPorId,omitempty"`
}
