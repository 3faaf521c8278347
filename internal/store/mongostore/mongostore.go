// Package mongostore persists products and users in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"petstore/internal/store"
)

const (
	productsCollection = "products"
	usersCollection    = "users"

	connectTimeout = 10 * time.Second
)

type Store struct {
	client   *mongo.Client
	products *ProductStore
	users    *UserStore
}

// Open connects to uri, verifies the connection and ensures the unique
// email index on the users collection.
func Open(ctx context.Context, uri, dbName string, logger zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info().Str("database", dbName).Msg("Connected to MongoDB")

	return &Store{
		client:   client,
		products: NewProductStore(db),
		users:    NewUserStore(db),
	}, nil
}

// EnsureIndexes creates the unique index that backs email uniqueness.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (s *Store) Products() store.ProductStore { return s.products }
func (s *Store) Users() store.UserStore       { return s.users }

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return err
	}
}
