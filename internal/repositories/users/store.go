package users

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/shared"
	"github.com/dcastano/finanzapp/internal/storage"
)

// StoreRepository implements Repository over the key-value store. Every
// mutation is a whole-collection read-modify-write guarded by a mutex, so
// the collection has at most one writer at a time.
type StoreRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) load(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.store.Get(ctx, storage.CollectionUsers, &users)
	if errors.Is(err, shared.ErrNotFound) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.load(ctx)
}

func (r *StoreRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *StoreRepository) Append(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)

	if err := r.store.Put(ctx, storage.CollectionUsers, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (r *StoreRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			if err := r.store.Put(ctx, storage.CollectionUsers, users); err != nil {
				return fmt.Errorf("failed to save users: %w", err)
			}
			return nil
		}
	}
	return shared.ErrNotFound
}
