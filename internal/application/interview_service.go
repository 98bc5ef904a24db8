package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/rs/zerolog"
)

type OpenOutcome string

const (
	OpenStarted   OpenOutcome = "started"
	OpenResumed   OpenOutcome = "resumed"
	OpenRecovered OpenOutcome = "recovered"
)

// InterviewService drives one interview session over a fixed catalog and
// writes the session through to a StateStore after every mutation.
type InterviewService struct {
	catalog domain.Catalog
	store   ports.StateStore
	random  ports.Random
	logger  zerolog.Logger

	session *domain.Session
}

func NewInterviewService(catalog domain.Catalog, store ports.StateStore, random ports.Random, logger zerolog.Logger) *InterviewService {
	if random == nil {
		random = ports.SystemRandom{}
	}

	return &InterviewService{
		catalog: catalog,
		store:   store,
		random:  random,
		logger:  logger,
	}
}

func (s *InterviewService) Catalog() domain.Catalog {
	return s.catalog
}

// Open resumes the persisted session when all keys are present and valid.
// Otherwise it starts a fresh session; a corrupt persisted session is
// discarded first and reported as OpenRecovered. When only the write of the
// fresh session fails, the outcome is returned together with the error.
func (s *InterviewService) Open(ctx context.Context) (OpenOutcome, error) {
	persisted, found, err := s.LoadPersisted(ctx)
	if err != nil && !errors.Is(err, domain.ErrCorruptSession) {
		return "", err
	}

	if err == nil && found {
		err = s.Resume(ctx, persisted)
		if err == nil {
			return OpenResumed, nil
		}
		if !errors.Is(err, domain.ErrCorruptSession) {
			return "", err
		}
	}

	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding persisted session")
		if clearErr := s.clearPersisted(ctx); clearErr != nil {
			return "", clearErr
		}
		if _, startErr := s.Start(ctx); startErr != nil {
			return startOutcome(OpenRecovered, startErr), startErr
		}
		return OpenRecovered, nil
	}

	if _, err := s.Start(ctx); err != nil {
		return startOutcome(OpenStarted, err), err
	}
	return OpenStarted, nil
}

func startOutcome(outcome OpenOutcome, err error) OpenOutcome {
	if errors.Is(err, domain.ErrPersistenceWrite) {
		return outcome
	}
	return ""
}

// Start assigns a uniformly random customer and begins at the first step.
func (s *InterviewService) Start(ctx context.Context) (domain.Session, error) {
	count := s.catalog.CustomerCount()
	if count == 0 {
		return domain.Session{}, domain.ErrEmptyCatalog
	}

	customer := s.catalog.CustomerAt(s.random.IntN(count))
	session := domain.NewSession(customer.ID)
	s.session = &session

	s.logger.Info().Str("customer_id", string(customer.ID)).Msg("session started")

	if err := s.replacePersisted(ctx); err != nil {
		return session.Clone(), err
	}
	return session.Clone(), nil
}

// Resume installs a previously persisted session after checking it against
// the catalog. Nothing is written.
func (s *InterviewService) Resume(_ context.Context, persisted domain.Session) error {
	if err := s.validatePersisted(persisted); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCorruptSession, err)
	}

	session := persisted.Clone()
	s.session = &session

	s.logger.Info().
		Str("customer_id", string(session.CustomerID)).
		Int("step", session.StepIndex).
		Msg("session resumed")

	return nil
}

func (s *InterviewService) validatePersisted(persisted domain.Session) error {
	if err := persisted.Validate(); err != nil {
		return err
	}
	if _, ok := s.catalog.Customer(persisted.CustomerID); !ok {
		return fmt.Errorf("unknown customer %q", persisted.CustomerID)
	}
	for category, id := range persisted.Selections {
		venue, ok := s.catalog.Venue(id)
		if !ok {
			return fmt.Errorf("selection for %s names unknown venue %q", category, id)
		}
		if venue.Category != category {
			return fmt.Errorf("selection for %s names %s venue %q", category, venue.Category, id)
		}
	}
	return nil
}

// Restart forgets the session in memory and in the store.
func (s *InterviewService) Restart(ctx context.Context) error {
	s.session = nil
	s.logger.Info().Msg("session restarted")
	return s.clearPersisted(ctx)
}

// Session returns a copy of the live session.
func (s *InterviewService) Session() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return s.session.Clone(), true
}

func (s *InterviewService) Customer() (domain.Customer, error) {
	if s.session == nil {
		return domain.Customer{}, domain.ErrNoSession
	}

	customer, ok := s.catalog.Customer(s.session.CustomerID)
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: unknown customer %q", domain.ErrCorruptSession, s.session.CustomerID)
	}
	return customer, nil
}

func (s *InterviewService) CurrentCategory() (domain.Category, error) {
	if s.session == nil {
		return "", domain.ErrNoSession
	}

	category, ok := domain.CategoryAt(s.session.StepIndex)
	if !ok {
		return "", domain.ErrInterviewComplete
	}
	return category, nil
}

func (s *InterviewService) VenuesForCurrentCategory() ([]domain.Venue, error) {
	category, err := s.CurrentCategory()
	if err != nil {
		return nil, err
	}
	return s.catalog.VenuesIn(category), nil
}

// SelectVenue records the venue for the current category and advances one
// step. The session is unchanged when the venue is not offered at this step.
func (s *InterviewService) SelectVenue(ctx context.Context, id domain.VenueID) error {
	category, err := s.CurrentCategory()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSelection, err)
	}

	venue, ok := s.catalog.Venue(id)
	if !ok || venue.Category != category {
		return fmt.Errorf("%w: venue %q is not offered for %s", domain.ErrInvalidSelection, id, category)
	}

	s.session.Selections[category] = id
	s.session.StepIndex++

	s.logger.Info().
		Str("category", string(category)).
		Str("venue_id", string(id)).
		Int("step", s.session.StepIndex).
		Msg("venue selected")

	return s.persist(ctx)
}

// GoBack re-enters the previous step and drops its selection.
func (s *InterviewService) GoBack(ctx context.Context) error {
	if s.session == nil {
		return domain.ErrNoSession
	}
	if s.session.StepIndex == 0 {
		return domain.ErrAtStart
	}

	s.session.StepIndex--
	category, _ := domain.CategoryAt(s.session.StepIndex)
	delete(s.session.Selections, category)

	s.logger.Info().
		Str("category", string(category)).
		Int("step", s.session.StepIndex).
		Msg("stepped back")

	return s.persist(ctx)
}

// ProgressFraction is zero before a session starts.
func (s *InterviewService) ProgressFraction() float64 {
	if s.session == nil {
		return 0
	}
	return s.session.ProgressFraction()
}

func (s *InterviewService) Complete() bool {
	return s.session != nil && s.session.Complete()
}

func (s *InterviewService) ComputeScore() (domain.ScoreReport, error) {
	if s.session == nil {
		return domain.ScoreReport{}, domain.ErrNoSession
	}
	if !s.session.Complete() {
		return domain.ScoreReport{}, domain.ErrInterviewNotComplete
	}

	customer, err := s.Customer()
	if err != nil {
		return domain.ScoreReport{}, err
	}

	return domain.ScorePlan(*s.session, customer, s.catalog), nil
}
