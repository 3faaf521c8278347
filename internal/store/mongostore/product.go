package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petstore/internal/models"
	"petstore/internal/store"
)

type productDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     *string            `bson:"name"`
	Price    *float64           `bson:"price"`
	Category *string            `bson:"category"`
}

func (d productDocument) toModel() *models.Product {
	return &models.Product{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Price:    d.Price,
		Category: d.Category,
	}
}

type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection(productsCollection)}
}

func (s *ProductStore) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	doc := productDocument{
		ID:       primitive.NewObjectID(),
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", mapErr(err))
	}
	return doc.toModel(), nil
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, *d.toModel())
	}
	return products, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	var doc productDocument
	set := updateSet(in)
	if len(set) == 0 {
		err = s.coll.FindOne(ctx, filter).Decode(&doc)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = s.coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, mapErr(err))
	}

	return doc.toModel(), nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var doc productDocument
	if err := s.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("delete product %s: %w", id, mapErr(err))
	}
	return doc.toModel(), nil
}

func updateSet(in models.ProductInput) bson.D {
	set := bson.D{}
	if in.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *in.Name})
	}
	if in.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *in.Price})
	}
	if in.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *in.Category})
	}
	return set
}
