package usuarios

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines persistence operations for users
type Repository interface {
	ObtenerPorNombre(ctx context.Context, nombreUsuario string) (*Usuario, error)
	ObtenerPorID(ctx context.Context, id string) (*Usuario, error)
	Crear(ctx context.Context, u *Usuario) error
	ActualizarUltimoAcceso(ctx context.Context, id string, fecha time.Time) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "nombreUsuario", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) ObtenerPorNombre(ctx context.Context, nombreUsuario string) (*Usuario, error) {
	var u Usuario
	if err := r.col.FindOne(ctx, bson.M{"nombreUsuario": nombreUsuario}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) ObtenerPorID(ctx context.Context, id string) (*Usuario, error) {
	var u Usuario
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) Crear(ctx context.Context, u *Usuario) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *MongoRepository) ActualizarUltimoAcceso(ctx context.Context, id string, fecha time.Time) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"fechaUltimoAcceso": fecha}})
	return err
}
