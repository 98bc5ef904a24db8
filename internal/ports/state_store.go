package ports

import "context"

// StateStore is the key/value store the interview session is written through
// to. Get returns domain.ErrStateKeyNotFound for a key that was never set.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type StateEntry struct {
	Key   string
	Value string
}

// BatchStateStore is implemented by stores that can write several keys as
// one unit: either every entry lands or none does.
type BatchStateStore interface {
	StateStore
	PutAll(ctx context.Context, entries []StateEntry) error
}
