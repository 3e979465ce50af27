// Package storage implements the durable key-value store underlying all
// FinanzApp collections. Each collection is persisted as one JSON document
// under a named key, mirroring the localStorage layout of the original
// application; readers and writers always move whole-collection snapshots.
package storage

import (
	"context"
	"errors"

	"github.com/dcastano/finanzapp/internal/shared"
)

// Collection keys. The names are kept verbatim from the original FinanzApp
// storage so existing data files remain portable.
const (
	CollectionUsers     = "finanzapp_users"
	CollectionSession   = "finanzapp_current_user"
	CollectionMovements = "finanzapp_movimientos"
	CollectionGoals     = "finanzapp_metas"
	CollectionReminders = "finanzapp_recordatorios"
	CollectionProfiles  = "finanzapp_perfiles"
)

// Store is a durable key-value store for JSON-serializable values.
//
// Contract:
//   - Put: serialize value and persist it under the collection key.
//   - Get: deserialize the stored document into dest; an absent key yields
//     shared.ErrNotFound, never a panic.
//   - Remove: drop the key; removing an absent key is a no-op.
//
// Medium or serialization failures are reported wrapped in
// shared.ErrStorage so callers can degrade gracefully.
type Store interface {
	Put(ctx context.Context, collection string, value any) error
	Get(ctx context.Context, collection string, dest any) error
	Remove(ctx context.Context, collection string) error
	Close() error
}

// Batcher is implemented by stores that can apply several writes atomically.
type Batcher interface {
	PutBatch(ctx context.Context, entries []BatchEntry) error
}

// BatchEntry is a single write within an atomic batch.
type BatchEntry struct {
	Collection string
	Value      any
}

// entityCollections lists every key seeded as an empty sequence at startup.
// The session pointer is deliberately absent: no key means no session.
var entityCollections = []string{
	CollectionUsers,
	CollectionMovements,
	CollectionGoals,
	CollectionReminders,
	CollectionProfiles,
}

// Initialize seeds each entity collection with an empty array unless it
// already exists. Calling it repeatedly is safe. Stores that support
// atomic batches get all seeds in one write.
func Initialize(ctx context.Context, s Store) error {
	var missing []BatchEntry
	for _, collection := range entityCollections {
		var raw []map[string]any
		err := s.Get(ctx, collection, &raw)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		missing = append(missing, BatchEntry{Collection: collection, Value: []map[string]any{}})
	}
	if len(missing) == 0 {
		return nil
	}

	if b, ok := s.(Batcher); ok {
		return b.PutBatch(ctx, missing)
	}
	for _, entry := range missing {
		if err := s.Put(ctx, entry.Collection, entry.Value); err != nil {
			return err
		}
	}
	return nil
}
