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

const selectProduct = `SELECT id, name, price, category FROM products`

type ProductStore struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p        models.Product
		name     sql.NullString
		price    sql.NullFloat64
		category sql.NullString
	)
	if err := row.Scan(&p.ID, &name, &price, &category); err != nil {
		return nil, err
	}
	if name.Valid {
		p.Name = &name.String
	}
	if price.Valid {
		p.Price = &price.Float64
	}
	if category.Valid {
		p.Category = &category.String
	}
	return &p, nil
}

func (s *ProductStore) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	p := &models.Product{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (id, name, price, category) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.Price, p.Category,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, selectProduct+" ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update keeps the stored value of every column whose input field is nil.
func (s *ProductStore) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := scanProduct(tx.QueryRowContext(ctx, selectProduct+" WHERE id = ? FOR UPDATE", id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("lock product %s: %w", id, err)
	}

	if !in.Empty() {
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET
				name = COALESCE(?, name),
				price = COALESCE(?, price),
				category = COALESCE(?, category)
			WHERE id = ?`,
			in.Name, in.Price, in.Category, id,
		)
		if err != nil {
			return nil, fmt.Errorf("update product %s: %w", id, err)
		}
	}

	p, err := scanProduct(tx.QueryRowContext(ctx, selectProduct+" WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("reload product %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) (*models.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	p, err := scanProduct(tx.QueryRowContext(ctx, selectProduct+" WHERE id = ? FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock product %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}
