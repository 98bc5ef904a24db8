package application

import (
	"context"
	"errors"
	"testing"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type inMemoryStateStore struct {
	values map[string]string
}

func newInMemoryStateStore() *inMemoryStateStore {
	return &inMemoryStateStore{values: map[string]string{}}
}

func (s *inMemoryStateStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrStateKeyNotFound
	}
	return value, nil
}

func (s *inMemoryStateStore) Put(_ context.Context, key string, value string) error {
	s.values[key] = value
	return nil
}

func (s *inMemoryStateStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

// failingStateStore rejects writes to one key and records the order of
// attempted writes.
type failingStateStore struct {
	*inMemoryStateStore
	failPut string
	puts    []string
}

var errInjectedWrite = errors.New("injected write failure")

func (s *failingStateStore) Put(ctx context.Context, key string, value string) error {
	s.puts = append(s.puts, key)
	if key == s.failPut {
		return errInjectedWrite
	}
	return s.inMemoryStateStore.Put(ctx, key, value)
}

type batchStateStore struct {
	*inMemoryStateStore
	failBatch error
	deletes   int
}

func (s *batchStateStore) Delete(ctx context.Context, key string) error {
	s.deletes++
	return s.inMemoryStateStore.Delete(ctx, key)
}

func (s *batchStateStore) PutAll(_ context.Context, entries []ports.StateEntry) error {
	if s.failBatch != nil {
		return s.failBatch
	}
	for _, entry := range entries {
		s.values[entry.Key] = entry.Value
	}
	return nil
}

type fixedRandom struct {
	n int
}

func (r fixedRandom) IntN(n int) int {
	return r.n % n
}

func testPlan() map[domain.Category]domain.VenueID {
	return map[domain.Category]domain.VenueID{
		domain.CategoryMorning:   "v1",
		domain.CategoryLunch:     "v2",
		domain.CategoryAfternoon: "v3",
		domain.CategoryNight:     "v4",
		domain.CategoryStay:      "v5",
	}
}

func testCatalog(t *testing.T) domain.Catalog {
	t.Helper()

	venues := []domain.Venue{
		{ID: "v1", Category: domain.CategoryMorning, Name: "Castle Walk", Tags: []string{"history"}},
		{ID: "m2", Category: domain.CategoryMorning, Name: "Aquarium", Tags: []string{"kids"}},
		{ID: "v2", Category: domain.CategoryLunch, Name: "Soba House", Tags: []string{"local"}},
		{ID: "l2", Category: domain.CategoryLunch, Name: "Burger Stand", Tags: []string{"quick"}},
		{ID: "v3", Category: domain.CategoryAfternoon, Name: "Art Museum", Tags: []string{"indoor"}},
		{ID: "wrong", Category: domain.CategoryAfternoon, Name: "Theme Park", Tags: []string{"kids"}},
		{ID: "v4", Category: domain.CategoryNight, Name: "Night View", Tags: []string{"romantic"}},
		{ID: "n2", Category: domain.CategoryNight, Name: "Izakaya Alley", Tags: []string{"drinks"}},
		{ID: "v5", Category: domain.CategoryStay, Name: "Hot Spring Ryokan", Tags: []string{"onsen"}},
		{ID: "s2", Category: domain.CategoryStay, Name: "Business Hotel", Tags: []string{"cheap"}},
	}

	customers := []domain.Customer{
		{
			ID:            "c1",
			Name:          "Ms. Aoki",
			PersonaText:   "Retired couple who enjoy quiet culture.",
			CategoryHints: map[domain.Category]string{domain.CategoryLunch: "They want something local."},
			CorrectPlan:   testPlan(),
		},
		{ID: "c2", Name: "Mr. Baba", PersonaText: "Family with kids.", CorrectPlan: testPlan()},
		{ID: "c3", Name: "Ms. Chiba", PersonaText: "Solo traveller on a budget.", CorrectPlan: testPlan()},
	}

	catalog, err := domain.NewCatalog(customers, venues)
	require.NoError(t, err)
	return catalog
}

func newTestService(t *testing.T, store *inMemoryStateStore) *InterviewService {
	t.Helper()
	return NewInterviewService(testCatalog(t), store, fixedRandom{n: 0}, zerolog.Nop())
}

func startedService(t *testing.T) (*InterviewService, *inMemoryStateStore) {
	t.Helper()

	store := newInMemoryStateStore()
	svc := newTestService(t, store)
	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	return svc, store
}

func selectAll(t *testing.T, svc *InterviewService, ids ...domain.VenueID) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, svc.SelectVenue(context.Background(), id))
	}
}
