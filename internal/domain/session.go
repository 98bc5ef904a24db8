package domain

import "fmt"

// Session is the persisted record of one interview run.
//
// Selections holds an entry for every category before StepIndex and none for
// the categories at or after it.
type Session struct {
	CustomerID CustomerID
	StepIndex  int
	Selections map[Category]VenueID
}

func NewSession(customerID CustomerID) Session {
	return Session{
		CustomerID: customerID,
		Selections: map[Category]VenueID{},
	}
}

func (s Session) Complete() bool {
	return s.StepIndex == CategoryCount
}

func (s Session) Clone() Session {
	selections := make(map[Category]VenueID, len(s.Selections))
	for category, id := range s.Selections {
		selections[category] = id
	}
	s.Selections = selections
	return s
}

// Validate checks the step range and the selection invariant. It does not
// consult a catalog.
func (s Session) Validate() error {
	if s.CustomerID == "" {
		return fmt.Errorf("customer id is required")
	}
	if s.StepIndex < 0 || s.StepIndex > CategoryCount {
		return fmt.Errorf("step index %d outside [0, %d]", s.StepIndex, CategoryCount)
	}
	for category := range s.Selections {
		if !category.Valid() {
			return fmt.Errorf("selection for unknown category %q", category)
		}
		if category.Index() >= s.StepIndex {
			return fmt.Errorf("selection for %s at step %d", category, s.StepIndex)
		}
	}
	for i := 0; i < s.StepIndex; i++ {
		if _, ok := s.Selections[categories[i]]; !ok {
			return fmt.Errorf("missing selection for %s at step %d", categories[i], s.StepIndex)
		}
	}
	return nil
}

// ProgressFraction is (StepIndex+1)/CategoryCount clamped to (0, 1].
func (s Session) ProgressFraction() float64 {
	f := float64(s.StepIndex+1) / float64(CategoryCount)
	if f > 1 {
		return 1
	}
	if f <= 0 {
		return 1 / float64(CategoryCount)
	}
	return f
}
