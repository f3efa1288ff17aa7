package tokens

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides token persistence over the live and archive collections.
type Repository interface {
	Crear(ctx context.Context, t *Token) error
	ObtenerPorID(ctx context.Context, id string) (*Token, error)
	// ActualizarExpiracion moves the expiry forward. A missing token is a
	// no-op, not an error: extension may race with revocation.
	ActualizarExpiracion(ctx context.Context, id string, hasta time.Time) error
	// Archivar atomically removes the token from the live collection and
	// inserts the archive record. Returns false when the token was absent.
	Archivar(ctx context.Context, id, motivo string, fecha time.Time) (bool, error)
}

// MongoRepository implements Repository over the tokens and tokens_expirados
// collections.
type MongoRepository struct {
	vivos      *mongo.Collection
	archivados *mongo.Collection
}

func NewMongoRepository(vivos, archivados *mongo.Collection) *MongoRepository {
	return &MongoRepository{vivos: vivos, archivados: archivados}
}

func (r *MongoRepository) Crear(ctx context.Context, t *Token) error {
	_, err := r.vivos.InsertOne(ctx, t)
	return err
}

func (r *MongoRepository) ObtenerPorID(ctx context.Context, id string) (*Token, error) {
	var t Token
	if err := r.vivos.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoRepository) ActualizarExpiracion(ctx context.Context, id string, hasta time.Time) error {
	_, err := r.vivos.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"fechaExpiracion": hasta}})
	return err
}

// Archivar runs the remove+insert pair inside a transaction so the token is
// never observable in both collections or in neither.
func (r *MongoRepository) Archivar(ctx context.Context, id, motivo string, fecha time.Time) (bool, error) {
	session, err := r.vivos.Database().Client().StartSession()
	if err != nil {
		return false, err
	}
	defer session.EndSession(ctx)

	archivado, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var t Token
		if err := r.vivos.FindOneAndDelete(sc, bson.M{"_id": id}).Decode(&t); err != nil {
			if err == mongo.ErrNoDocuments {
				return false, nil
			}
			return false, err
		}
		exp := TokenExpirado{
			ID:              t.ID,
			IDUsuario:       t.IDUsuario,
			IP:              t.IP,
			FechaCreacion:   t.FechaCreacion,
			FechaExpiracion: t.FechaExpiracion,
			Motivo:          motivo,
			FechaArchivado:  fecha,
		}
		if _, err := r.archivados.InsertOne(sc, exp); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return archivado.(bool), nil
}
