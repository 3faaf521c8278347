// Package memory is an in-process store used for local runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"petstore/internal/models"
	"petstore/internal/store"
)

type Store struct {
	products *ProductStore
	users    *UserStore
}

func New() *Store {
	return &Store{
		products: &ProductStore{byID: make(map[string]models.Product)},
		users:    &UserStore{byEmail: make(map[string]models.User)},
	}
}

func (s *Store) Products() store.ProductStore { return s.products }
func (s *Store) Users() store.UserStore       { return s.users }
func (s *Store) Close(context.Context) error  { return nil }

type ProductStore struct {
	mu    sync.RWMutex
	byID  map[string]models.Product
	order []string
}

func (s *ProductStore) Create(_ context.Context, in models.ProductInput) (*models.Product, error) {
	p := models.Product{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)

	return &p, nil
}

func (s *ProductStore) List(context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.byID[id])
	}
	return products, nil
}

func (s *ProductStore) Update(_ context.Context, id string, in models.ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if in.Name != nil {
		p.Name = in.Name
	}
	if in.Price != nil {
		p.Price = in.Price
	}
	if in.Category != nil {
		p.Category = in.Category
	}
	s.byID[id] = p

	return &p, nil
}

func (s *ProductStore) Delete(_ context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return &p, nil
}

type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func (s *UserStore) Create(_ context.Context, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, store.ErrDuplicate
	}
	u := models.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash}
	s.byEmail[email] = u

	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}
