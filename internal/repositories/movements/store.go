package movements

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/shared"
	"github.com/dcastano/finanzapp/internal/storage"
)

// StoreRepository implements Repository over the key-value store with
// mutex-guarded whole-collection read-modify-write.
type StoreRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) load(ctx context.Context) ([]models.Movement, error) {
	var items []models.Movement
	err := r.store.Get(ctx, storage.CollectionMovements, &items)
	if errors.Is(err, shared.ErrNotFound) {
		return []models.Movement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load movements: %w", err)
	}
	return items, nil
}

func (r *StoreRepository) save(ctx context.Context, items []models.Movement) error {
	if err := r.store.Put(ctx, storage.CollectionMovements, items); err != nil {
		return fmt.Errorf("failed to save movements: %w", err)
	}
	return nil
}

func (r *StoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Movement, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Movement, 0, len(items))
	for _, item := range items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*models.Movement, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *StoreRepository) Append(ctx context.Context, movement models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(items, movement))
}

func (r *StoreRepository) Update(ctx context.Context, movement models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == movement.ID {
			items[i] = movement
			return r.save(ctx, items)
		}
	}
	return shared.ErrNotFound
}

func (r *StoreRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	filtered := make([]models.Movement, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return r.save(ctx, filtered)
}
