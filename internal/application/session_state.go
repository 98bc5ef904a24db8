package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/bytedance/sonic"
)

const StateNamespace = "rac-tourist/"

const (
	KeySelectedCustomerID   = StateNamespace + "selectedCustomerId"
	KeyCurrentCategoryIndex = StateNamespace + "currentCategoryIndex"
	KeySelectedPlaces       = StateNamespace + "selectedPlaces"
)

// StateKeys lists the persisted keys in read order.
func StateKeys() []string {
	return []string{KeySelectedCustomerID, KeyCurrentCategoryIndex, KeySelectedPlaces}
}

// writeOrder puts the customer id last, so a store that fails part way
// through a write keeps the previous customer's keys or ends up with a
// combination Resume rejects.
func writeOrder() []string {
	return []string{KeySelectedPlaces, KeyCurrentCategoryIndex, KeySelectedCustomerID}
}

// LoadPersisted reads the persisted session. found is false when any key is
// absent. Values that cannot be decoded are reported as ErrCorruptSession.
func (s *InterviewService) LoadPersisted(ctx context.Context) (domain.Session, bool, error) {
	values := make(map[string]string, 3)
	for _, key := range StateKeys() {
		value, err := s.store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, domain.ErrStateKeyNotFound) {
				return domain.Session{}, false, nil
			}
			return domain.Session{}, false, fmt.Errorf("read %s: %w", key, err)
		}
		values[key] = value
	}

	session, err := decodeSession(values)
	if err != nil {
		return domain.Session{}, true, fmt.Errorf("%w: %w", domain.ErrCorruptSession, err)
	}
	return session, true, nil
}

func (s *InterviewService) persist(ctx context.Context) error {
	entries, err := encodeSession(*s.session)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}

	if batch, ok := s.store.(ports.BatchStateStore); ok {
		if err := batch.PutAll(ctx, entries); err != nil {
			s.logger.Error().Err(err).Msg("session write-through failed")
			return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		}
		return nil
	}

	for _, entry := range entries {
		if err := s.store.Put(ctx, entry.Key, entry.Value); err != nil {
			s.logger.Error().Err(err).Str("key", entry.Key).Msg("session write-through failed")
			return fmt.Errorf("%w: put %s: %w", domain.ErrPersistenceWrite, entry.Key, err)
		}
	}
	return nil
}

// replacePersisted writes a brand-new session. Stores without batch writes
// are cleared first so a partial write can never pair the new customer with
// the previous session's progress.
func (s *InterviewService) replacePersisted(ctx context.Context) error {
	if _, ok := s.store.(ports.BatchStateStore); !ok {
		if err := s.clearPersisted(ctx); err != nil {
			return err
		}
	}
	return s.persist(ctx)
}

func (s *InterviewService) clearPersisted(ctx context.Context) error {
	var errs []error
	for _, key := range StateKeys() {
		if err := s.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, errors.Join(errs...))
	}
	return nil
}

func encodeSession(session domain.Session) ([]ports.StateEntry, error) {
	selections := make(map[string]string, len(session.Selections))
	for category, id := range session.Selections {
		selections[string(category)] = string(id)
	}

	encoded, err := sonic.ConfigStd.MarshalToString(selections)
	if err != nil {
		return nil, fmt.Errorf("encode selections: %w", err)
	}

	values := map[string]string{
		KeySelectedCustomerID:   string(session.CustomerID),
		KeyCurrentCategoryIndex: strconv.Itoa(session.StepIndex),
		KeySelectedPlaces:       encoded,
	}

	entries := make([]ports.StateEntry, 0, len(values))
	for _, key := range writeOrder() {
		entries = append(entries, ports.StateEntry{Key: key, Value: values[key]})
	}
	return entries, nil
}

func decodeSession(values map[string]string) (domain.Session, error) {
	customerID := strings.TrimSpace(values[KeySelectedCustomerID])
	if customerID == "" {
		return domain.Session{}, errors.New("customer id is empty")
	}

	step, err := strconv.Atoi(strings.TrimSpace(values[KeyCurrentCategoryIndex]))
	if err != nil {
		return domain.Session{}, fmt.Errorf("decode step index: %w", err)
	}

	selections, err := decodeSelections(values[KeySelectedPlaces])
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		CustomerID: domain.CustomerID(customerID),
		StepIndex:  step,
		Selections: selections,
	}, nil
}

// decodeSelections accepts either venue ids or full venue records keyed by
// category; records are reduced to their "id" field.
func decodeSelections(raw string) (map[domain.Category]domain.VenueID, error) {
	selections := map[domain.Category]domain.VenueID{}
	if strings.TrimSpace(raw) == "" {
		return selections, nil
	}

	var decoded map[string]any
	if err := sonic.ConfigStd.UnmarshalFromString(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}

	for key, value := range decoded {
		category, err := domain.ParseCategory(key)
		if err != nil {
			return nil, fmt.Errorf("decode selections: %w", err)
		}

		switch v := value.(type) {
		case string:
			selections[category] = domain.VenueID(v)
		case map[string]any:
			id, ok := v["id"].(string)
			if !ok || id == "" {
				return nil, fmt.Errorf("decode selections: %s record has no id", category)
			}
			selections[category] = domain.VenueID(id)
		default:
			return nil, fmt.Errorf("decode selections: unexpected %T for %s", value, category)
		}
	}

	return selections, nil
}
