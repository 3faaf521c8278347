package mongostore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"petstore/internal/models"
	"petstore/internal/store"
)

func ptr[T any](v T) *T { return &v }

func productDoc(id primitive.ObjectID, name string, price float64, category string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "price", Value: price},
		{Key: "category", Value: category},
	}
}

func TestProductStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p, err := NewProductStore(mt.DB).Create(ctx, models.ProductInput{
			Name:  ptr("Leash"),
			Price: ptr(9.99),
		})
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(p.ID))
		assert.Equal(mt, "Leash", *p.Name)
		assert.Nil(mt, p.Category)
	})

	mt.Run("list decodes all documents", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		ns := mt.DB.Name() + "." + productsCollection
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				productDoc(id1, "Leash", 9.99, "Accessories"),
				productDoc(id2, "Bowl", 4.5, "Feeding"),
			),
		)

		products, err := NewProductStore(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, id1.Hex(), products[0].ID)
		assert.Equal(mt, "Bowl", *products[1].Name)
		assert.Equal(mt, 4.5, *products[1].Price)
	})

	mt.Run("list empty collection", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + productsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		products, err := NewProductStore(mt.DB).List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("list command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		_, err := NewProductStore(mt.DB).List(ctx)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("update returns document after change", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: productDoc(id, "Long Leash", 12.5, "Accessories")},
		})

		p, err := NewProductStore(mt.DB).Update(ctx, id.Hex(), models.ProductInput{
			Name:  ptr("Long Leash"),
			Price: ptr(12.5),
		})
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), p.ID)
		assert.Equal(mt, "Long Leash", *p.Name)
		assert.Equal(mt, "Accessories", *p.Category)
	})

	mt.Run("update missing document", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := NewProductStore(mt.DB).Update(ctx, primitive.NewObjectID().Hex(), models.ProductInput{Name: ptr("x")})
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("update with empty body reads current document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + productsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			productDoc(id, "Leash", 9.99, "Accessories"),
		))

		p, err := NewProductStore(mt.DB).Update(ctx, id.Hex(), models.ProductInput{})
		require.NoError(mt, err)
		assert.Equal(mt, "Leash", *p.Name)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		s := NewProductStore(mt.DB)

		_, err := s.Update(ctx, "not-an-object-id", models.ProductInput{Name: ptr("x")})
		assert.ErrorIs(mt, err, store.ErrNotFound)

		_, err = s.Delete(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("delete returns snapshot", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: productDoc(id, "Leash", 9.99, "Accessories")},
		})

		p, err := NewProductStore(mt.DB).Delete(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), p.ID)
		assert.Equal(mt, "Leash", *p.Name)
	})

	mt.Run("delete missing document", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := NewProductStore(mt.DB).Delete(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})
}

func TestUserStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := NewUserStore(mt.DB).Create(ctx, "a@x.com", "$2a$10$hash")
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(u.ID))
		assert.Equal(mt, "a@x.com", u.Email)
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_unique",
		}))

		_, err := NewUserStore(mt.DB).Create(ctx, "a@x.com", "$2a$10$hash")
		assert.ErrorIs(mt, err, store.ErrDuplicate)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + usersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "a@x.com"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		u, err := NewUserStore(mt.DB).FindByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "$2a$10$hash", u.PasswordHash)
	})

	mt.Run("find by email missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + usersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewUserStore(mt.DB).FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(ctx, mt.DB))
	})
}
