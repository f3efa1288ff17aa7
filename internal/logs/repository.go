package logs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository appends audit entries. There are no update or delete
// operations: the log is append-only.
type Repository interface {
	Insertar(ctx context.Context, l *Log) error
	ObtenerDesde(ctx context.Context, desde time.Time) ([]Log, error)
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "fecha", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insertar(ctx context.Context, l *Log) error {
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *MongoRepository) ObtenerDesde(ctx context.Context, desde time.Time) ([]Log, error) {
	cur, err := r.col.Find(ctx, bson.M{"fecha": bson.M{"$gte": desde}},
		options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Log{}
	for cur.Next(ctx) {
		var l Log
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
