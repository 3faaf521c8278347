package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"petstore/internal/models"
	"petstore/internal/store"
)

type UserStore struct {
	db *sql.DB
}

func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	u := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)",
		u.ID, u.Email, u.PasswordHash,
	)
	if isDuplicate(err) {
		return nil, fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}
