// Package mysqlstore persists products and users in MySQL through
// database/sql and the go-sql-driver/mysql driver.
package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"petstore/internal/store"
)

// erDupEntry is the MySQL server error returned on a unique key violation.
const erDupEntry = 1062

type Store struct {
	db       *sql.DB
	products *ProductStore
	users    *UserStore
}

// Open connects with a go-sql-driver DSN, pings the server and runs the
// schema migrations.
func Open(ctx context.Context, dsn string, logger zerolog.Logger) (*Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	logger.Info().Str("database", cfg.DBName).Msg("Connected to MySQL")

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info().Msg("Migrations completed")

	return New(db), nil
}

// New wraps an already opened database.
func New(db *sql.DB) *Store {
	return &Store{
		db:       db,
		products: &ProductStore{db: db},
		users:    &UserStore{db: db},
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(255) NULL,
			price DOUBLE NULL,
			category VARCHAR(255) NULL,
			created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_email (email)
		);`,
	}

	for _, q := range queries {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
	}
	return nil
}

func (s *Store) Products() store.ProductStore { return s.products }
func (s *Store) Users() store.UserStore       { return s.users }

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDupEntry
}
