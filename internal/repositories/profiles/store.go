package profiles

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

func (r *StoreRepository) load(ctx context.Context) ([]models.FinancialProfile, error) {
	var items []models.FinancialProfile
	err := r.store.Get(ctx, storage.CollectionProfiles, &items)
	if errors.Is(err, shared.ErrNotFound) {
		return []models.FinancialProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return items, nil
}

func (r *StoreRepository) FindByUserID(ctx context.Context, userID string) (*models.FinancialProfile, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].UserID == userID {
			return &items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *StoreRepository) Upsert(ctx context.Context, profile models.FinancialProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].UserID == profile.UserID {
			items[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, profile)
	}

	if err := r.store.Put(ctx, storage.CollectionProfiles, items); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}
