package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"petstore/internal/models"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(usersCollection)}
}

func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: passwordHash,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", mapErr(err))
	}
	return &models.User{ID: doc.ID.Hex(), Email: doc.Email, PasswordHash: doc.Password}, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("find user by email: %w", mapErr(err))
	}
	return &models.User{ID: doc.ID.Hex(), Email: doc.Email, PasswordHash: doc.Password}, nil
}
