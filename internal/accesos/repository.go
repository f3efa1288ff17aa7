package accesos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides site-credential persistence operations
type Repository interface {
	ObtenerPorSitio(ctx context.Context, sitio string) (*Acceso, error)
	Crear(ctx context.Context, a *Acceso) error
	Desactivar(ctx context.Context, sitio string) error
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "sitio", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

// ObtenerPorSitio returns the active credential for the site, or nil when
// no active row exists.
func (r *MongoRepository) ObtenerPorSitio(ctx context.Context, sitio string) (*Acceso, error) {
	var a Acceso
	if err := r.col.FindOne(ctx, bson.M{"sitio": sitio, "activo": true}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) Crear(ctx context.Context, a *Acceso) error {
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *MongoRepository) Desactivar(ctx context.Context, sitio string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"sitio": sitio}, bson.M{"$set": bson.M{"activo": false}})
	return err
}
