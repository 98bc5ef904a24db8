package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
)

// Store reads from the primary backend and falls back when it fails. Writes
// and deletes go to both backends so the fallback never serves a session the
// primary has already replaced or cleared. A missing key on the primary is an
// answer, not a failure.
type Store struct {
	primary  ports.StateStore
	fallback ports.StateStore
}

var _ ports.BatchStateStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary state store is nil")
	errNilFallbackStore = errors.New("fallback state store is nil")
)

func NewStore(primary ports.StateStore, fallback ports.StateStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.StateStore, fallback ports.StateStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.mirror("put", func(store ports.StateStore) error {
		return store.Put(ctx, key, value)
	})
}

// PutAll writes the entries to each backend, as one batch where the backend
// supports it.
func (s *Store) PutAll(ctx context.Context, entries []ports.StateEntry) error {
	return s.mirror("put", func(store ports.StateStore) error {
		return putAll(ctx, store, entries)
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) || errors.Is(err, domain.ErrStateKeyNotFound) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.mirror("delete", func(store ports.StateStore) error {
		return store.Delete(ctx, key)
	})
}

// mirror applies op to both backends. A primary failure is tolerated when the
// fallback took the change; a fallback failure is always reported because the
// fallback would otherwise hold stale state.
func (s *Store) mirror(op string, apply func(ports.StateStore) error) error {
	err := apply(s.primary)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := apply(s.fallback)
	switch {
	case fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend %s failed: %w", op, fallbackErr)
	default:
		return fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", op, err, op, fallbackErr)
	}
}

// putAll clears the keys on a backend without batch writes before writing
// them in order, so an interrupted write leaves keys missing rather than
// mixed with older values.
func putAll(ctx context.Context, store ports.StateStore, entries []ports.StateEntry) error {
	if batch, ok := store.(ports.BatchStateStore); ok {
		return batch.PutAll(ctx, entries)
	}

	for _, entry := range entries {
		if err := store.Delete(ctx, entry.Key); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if err := store.Put(ctx, entry.Key, entry.Value); err != nil {
			return err
		}
	}
	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
