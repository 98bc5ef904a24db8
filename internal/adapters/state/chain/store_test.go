package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	portmocks "github.com/TomoakiAbebe/rac-tourist/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "rac-tourist/selectedCustomerId"

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, testKey).Return("from-redis", nil).Once()

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "from-redis", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, testKey).Return("", errors.New("redis unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, testKey).Return("from-toml", nil).Once()

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "from-toml", value)
}

func TestStoreGetDoesNotFallBackOnMissingKey(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, testKey).Return("", fmt.Errorf("state %q: %w", testKey, domain.ErrStateKeyNotFound)).Once()

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, testKey).Return("", errors.New("redis failed")).Once()
	fallback.EXPECT().Get(mock.Anything, testKey).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "redis failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, testKey, "c1").Return(errors.New("redis unavailable")).Once()
	fallback.EXPECT().Put(mock.Anything, testKey, "c1").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), testKey, "c1"))
}

func TestStorePutSkipsFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, testKey, "c1").Return(context.Canceled).Once()

	err := store.Put(context.Background(), testKey, "c1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreDeleteReturnsCombinedError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primaryErr := errors.New("redis failed")
	fallbackErr := errors.New("file failed")
	primary.EXPECT().Delete(mock.Anything, testKey).Return(primaryErr).Once()
	fallback.EXPECT().Delete(mock.Anything, testKey).Return(fallbackErr).Once()

	err := store.Delete(context.Background(), testKey)
	require.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, fallbackErr)
}

func TestStorePutMirrorsToFallback(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, testKey, "c2").Return(nil).Once()
	fallback.EXPECT().Put(mock.Anything, testKey, "c2").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), testKey, "c2"))
}

func TestStoreDeleteRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, testKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, testKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreDeleteReportsFallbackFailureAfterPrimarySuccess(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	fallbackErr := errors.New("read-only file system")
	primary.EXPECT().Delete(mock.Anything, testKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, testKey).Return(fallbackErr).Once()

	err := store.Delete(context.Background(), testKey)
	require.ErrorIs(t, err, fallbackErr)
	assert.ErrorContains(t, err, "fallback backend delete failed")
}

func TestStoreDeleteToleratesPrimaryFailureWhenFallbackSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockStateStore(t)
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, testKey).Return(errors.New("redis unavailable")).Once()
	fallback.EXPECT().Delete(mock.Anything, testKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreDeletedKeyDoesNotResurfaceFromFallback(t *testing.T) {
	t.Parallel()

	primary := newMemoryStore()
	fallback := newMemoryStore()
	store := NewStore(primary, fallback)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testKey, "c1"))
	require.NoError(t, store.Delete(ctx, testKey))

	primary.getErr = errors.New("redis unavailable")
	_, err := store.Get(ctx, testKey)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)
}

func TestStorePutAllClearsSequentialBackendFirst(t *testing.T) {
	t.Parallel()

	primary := &batchMemoryStore{memoryStore: newMemoryStore()}
	fallback := portmocks.NewMockStateStore(t)
	store := NewStore(primary, fallback)

	entries := []ports.StateEntry{
		{Key: "rac-tourist/selectedPlaces", Value: "{}"},
		{Key: testKey, Value: "c2"},
	}

	var calls []string
	for _, entry := range entries {
		fallback.EXPECT().Delete(mock.Anything, entry.Key).
			Run(func(context.Context, string) { calls = append(calls, "delete "+entry.Key) }).
			Return(nil).Once()
	}
	fallback.EXPECT().Put(mock.Anything, "rac-tourist/selectedPlaces", "{}").
		Run(func(context.Context, string, string) { calls = append(calls, "put rac-tourist/selectedPlaces") }).
		Return(nil).Once()
	fallback.EXPECT().Put(mock.Anything, testKey, "c2").Return(errors.New("disk full")).Once()

	err := store.PutAll(context.Background(), entries)
	require.ErrorContains(t, err, "disk full")

	assert.Equal(t, 1, primary.batches)
	assert.Equal(t, "c2", primary.values[testKey])
	assert.Equal(t, []string{
		"delete rac-tourist/selectedPlaces",
		"delete " + testKey,
		"put rac-tourist/selectedPlaces",
	}, calls)
}

type memoryStore struct {
	values map[string]string
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrStateKeyNotFound
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value string) error {
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type batchMemoryStore struct {
	*memoryStore
	batches int
}

func (s *batchMemoryStore) PutAll(_ context.Context, entries []ports.StateEntry) error {
	s.batches++
	for _, entry := range entries {
		s.values[entry.Key] = entry.Value
	}
	return nil
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockStateStore(t))
	assert.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockStateStore(t), nil)
	assert.ErrorIs(t, err, errNilFallbackStore)
}
