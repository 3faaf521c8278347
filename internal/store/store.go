// Package store declares the persistence contracts used by the services.
// Implementations live in the mongostore, mysqlstore and memory packages.
package store

import (
	"context"
	"errors"

	"petstore/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the given id or filter.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

type ProductStore interface {
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	// Update applies the non-nil fields of in and returns the updated record.
	Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	// Delete removes the record and returns its last state.
	Delete(ctx context.Context, id string) (*models.Product, error)
}

type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Store is a process-wide handle opened once at startup.
type Store interface {
	Products() ProductStore
	Users() UserStore
	Close(ctx context.Context) error
}
