package geografia

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func filtroBusqueda(busqueda string) bson.M {
	if busqueda == "" {
		return bson.M{}
	}
	return bson.M{"nombre": bson.M{"$regex": primitive.Regex{Pattern: busqueda, Options: "i"}}}
}

func normalizarPagina(pagina, elementos int) (int, int) {
	if pagina < 1 {
		pagina = 1
	}
	if elementos < 1 {
		elementos = 10
	}
	return pagina, elementos
}

// PaisMongoRepository implements PaisRepository over the paises collection.
type PaisMongoRepository struct {
	col *mongo.Collection
}

func NewPaisMongoRepository(col *mongo.Collection) *PaisMongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "nombre", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &PaisMongoRepository{col: col}
}

func (r *PaisMongoRepository) ObtenerTodos(ctx context.Context) ([]Pais, error) {
	cur, err := r.col.Find(ctx, bson.M{"activo": true},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Pais{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaisMongoRepository) ObtenerPorID(ctx context.Context, id string) (*Pais, error) {
	var p Pais
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaisMongoRepository) Insertar(ctx context.Context, p *Pais) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PaisMongoRepository) Actualizar(ctx context.Context, p *Pais) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return err
}

func (r *PaisMongoRepository) ExistePorNombre(ctx context.Context, nombre, exceptoID string) (bool, error) {
	filtro := bson.M{"nombre": nombre}
	if exceptoID != "" {
		filtro["_id"] = bson.M{"$ne": exceptoID}
	}
	n, err := r.col.CountDocuments(ctx, filtro)
	return n > 0, err
}

func (r *PaisMongoRepository) ExistePorCodigo(ctx context.Context, codigo, exceptoID string) (bool, error) {
	filtro := bson.M{"codigoIso": codigo}
	if exceptoID != "" {
		filtro["_id"] = bson.M{"$ne": exceptoID}
	}
	n, err := r.col.CountDocuments(ctx, filtro)
	return n > 0, err
}

func (r *PaisMongoRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, busqueda string) (int64, []Pais, error) {
	pagina, elementos = normalizarPagina(pagina, elementos)
	filtro := filtroBusqueda(busqueda)
	total, err := r.col.CountDocuments(ctx, filtro)
	if err != nil {
		return 0, nil, err
	}
	cur, err := r.col.Find(ctx, filtro, options.Find().
		SetSort(bson.D{{Key: "nombre", Value: 1}}).
		SetSkip(int64((pagina-1)*elementos)).
		SetLimit(int64(elementos)))
	if err != nil {
		return 0, nil, err
	}
	defer cur.Close(ctx)
	lista := []Pais{}
	if err := cur.All(ctx, &lista); err != nil {
		return 0, nil, err
	}
	return total, lista, nil
}

// DepartamentoMongoRepository implements DepartamentoRepository.
type DepartamentoMongoRepository struct {
	col *mongo.Collection
}

func NewDepartamentoMongoRepository(col *mongo.Collection) *DepartamentoMongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "paisId", Value: 1}, {Key: "nombre", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &DepartamentoMongoRepository{col: col}
}

func (r *DepartamentoMongoRepository) ObtenerTodos(ctx context.Context) ([]Departamento, error) {
	cur, err := r.col.Find(ctx, bson.M{"activo": true},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Departamento{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DepartamentoMongoRepository) ObtenerPorID(ctx context.Context, id string) (*Departamento, error) {
	var d Departamento
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartamentoMongoRepository) ObtenerPorPais(ctx context.Context, paisID string) ([]Departamento, error) {
	cur, err := r.col.Find(ctx, bson.M{"paisId": paisID, "activo": true},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Departamento{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DepartamentoMongoRepository) Insertar(ctx context.Context, d *Departamento) error {
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DepartamentoMongoRepository) Actualizar(ctx context.Context, d *Departamento) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	return err
}

func (r *DepartamentoMongoRepository) ExistePorNombreEnPais(ctx context.Context, nombre, paisID, exceptoID string) (bool, error) {
	filtro := bson.M{"nombre": nombre, "paisId": paisID}
	if exceptoID != "" {
		filtro["_id"] = bson.M{"$ne": exceptoID}
	}
	n, err := r.col.CountDocuments(ctx, filtro)
	return n > 0, err
}

func (r *DepartamentoMongoRepository) ExistenActivosPorPais(ctx context.Context, paisID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"paisId": paisID, "activo": true})
	return n > 0, err
}

func (r *DepartamentoMongoRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, paisID, busqueda string) (int64, []Departamento, error) {
	pagina, elementos = normalizarPagina(pagina, elementos)
	filtro := filtroBusqueda(busqueda)
	if paisID != "" {
		filtro["paisId"] = paisID
	}
	total, err := r.col.CountDocuments(ctx, filtro)
	if err != nil {
		return 0, nil, err
	}
	cur, err := r.col.Find(ctx, filtro, options.Find().
		SetSort(bson.D{{Key: "nombre", Value: 1}}).
		SetSkip(int64((pagina-1)*elementos)).
		SetLimit(int64(elementos)))
	if err != nil {
		return 0, nil, err
	}
	defer cur.Close(ctx)
	lista := []Departamento{}
	if err := cur.All(ctx, &lista); err != nil {
		return 0, nil, err
	}
	return total, lista, nil
}

// CiudadMongoRepository implements CiudadRepository.
type CiudadMongoRepository struct {
	col *mongo.Collection
}

func NewCiudadMongoRepository(col *mongo.Collection) *CiudadMongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "departamentoId", Value: 1}, {Key: "nombre", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &CiudadMongoRepository{col: col}
}

func (r *CiudadMongoRepository) ObtenerTodos(ctx context.Context) ([]Ciudad, error) {
	cur, err := r.col.Find(ctx, bson.M{"activo": true},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Ciudad{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CiudadMongoRepository) ObtenerPorID(ctx context.Context, id string) (*Ciudad, error) {
	var c Ciudad
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CiudadMongoRepository) ObtenerPorDepartamento(ctx context.Context, departamentoID string) ([]Ciudad, error) {
	cur, err := r.col.Find(ctx, bson.M{"departamentoId": departamentoID, "activo": true},
		options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Ciudad{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CiudadMongoRepository) Insertar(ctx context.Context, c *Ciudad) error {
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CiudadMongoRepository) Actualizar(ctx context.Context, c *Ciudad) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

func (r *CiudadMongoRepository) ExistePorNombreEnDepartamento(ctx context.Context, nombre, departamentoID, exceptoID string) (bool, error) {
	filtro := bson.M{"nombre": nombre, "departamentoId": departamentoID}
	if exceptoID != "" {
		filtro["_id"] = bson.M{"$ne": exceptoID}
	}
	n, err := r.col.CountDocuments(ctx, filtro)
	return n > 0, err
}

func (r *CiudadMongoRepository) ExistenActivasPorDepartamento(ctx context.Context, departamentoID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"departamentoId": departamentoID, "activo": true})
	return n > 0, err
}

func (r *CiudadMongoRepository) ObtenerPaginado(ctx context.Context, pagina, elementos int, departamentoID, busqueda string) (int64, []Ciudad, error) {
	pagina, elementos = normalizarPagina(pagina, elementos)
	filtro := filtroBusqueda(busqueda)
	if departamentoID != "" {
		filtro["departamentoId"] = departamentoID
	}
	total, err := r.col.CountDocuments(ctx, filtro)
	if err != nil {
		return 0, nil, err
	}
	cur, err := r.col.Find(ctx, filtro, options.Find().
		SetSort(bson.D{{Key: "nombre", Value: 1}}).
		SetSkip(int64((pagina-1)*elementos)).
		SetLimit(int64(elementos)))
	if err != nil {
		return 0, nil, err
	}
	defer cur.Close(ctx)
	lista := []Ciudad{}
	if err := cur.All(ctx, &lista); err != nil {
		return 0, nil, err
	}
	return total, lista, nil
}
