package application

import (
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
)

type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenInterview Screen = "interview"
	ScreenPlan      Screen = "plan"
	ScreenResult    Screen = "result"
)

// CurrentScreen is the screen implied by the session state. The result
// screen is reached from the plan screen by an explicit user action.
func (s *InterviewService) CurrentScreen() Screen {
	switch {
	case s.session == nil:
		return ScreenHome
	case s.session.Complete():
		return ScreenPlan
	default:
		return ScreenInterview
	}
}

type HintPanel struct {
	CustomerName  string
	PersonaText   string
	CategoryLabel string
	Hint          string
}

type InterviewView struct {
	Category   domain.Category
	Title      string
	Step       int
	TotalSteps int
	Progress   float64
	CanGoBack  bool
	Hint       HintPanel
	Venues     []domain.Venue
}

type TimelineEntry struct {
	Slot     string
	Category domain.Category
	Venue    domain.Venue
}

type PlanView struct {
	CustomerName string
	Entries      []TimelineEntry
}

type FeedbackLine struct {
	Category      domain.Category
	CategoryLabel string
	Correct       bool
	SelectedName  string
	CorrectName   string
}

type ResultView struct {
	Report   domain.ScoreReport
	Tier     domain.Tier
	Headline string
	Band     domain.HintBand
	Banner   string
	Lines    []FeedbackLine
}

func (s *InterviewService) InterviewView() (InterviewView, error) {
	category, err := s.CurrentCategory()
	if err != nil {
		return InterviewView{}, err
	}

	customer, err := s.Customer()
	if err != nil {
		return InterviewView{}, err
	}

	return InterviewView{
		Category:   category,
		Title:      fmt.Sprintf("Choose the %s", category.Label()),
		Step:       s.session.StepIndex + 1,
		TotalSteps: domain.CategoryCount,
		Progress:   s.session.ProgressFraction(),
		CanGoBack:  s.session.StepIndex > 0,
		Hint: HintPanel{
			CustomerName:  customer.Name,
			PersonaText:   customer.PersonaText,
			CategoryLabel: category.Label(),
			Hint:          customer.Hint(category),
		},
		Venues: s.catalog.VenuesIn(category),
	}, nil
}

// PlanView lists the selected venues on the fixed timeline. Categories
// without a selection are skipped.
func (s *InterviewService) PlanView() (PlanView, error) {
	customer, err := s.Customer()
	if err != nil {
		return PlanView{}, err
	}

	view := PlanView{CustomerName: customer.Name}
	for _, category := range domain.Categories() {
		id, ok := s.session.Selections[category]
		if !ok {
			continue
		}
		venue, ok := s.catalog.Venue(id)
		if !ok {
			continue
		}
		view.Entries = append(view.Entries, TimelineEntry{
			Slot:     category.TimeSlot(),
			Category: category,
			Venue:    venue,
		})
	}

	return view, nil
}

func (s *InterviewService) ResultView() (ResultView, error) {
	report, err := s.ComputeScore()
	if err != nil {
		return ResultView{}, err
	}

	return BuildResultView(report), nil
}

// BuildResultView turns a score report into result screen data.
func BuildResultView(report domain.ScoreReport) ResultView {
	view := ResultView{
		Report:   report,
		Tier:     report.Tier(),
		Headline: Headline(report.Tier()),
		Band:     report.HintBand(),
		Banner:   Banner(report.HintBand()),
	}

	for _, result := range report.Results() {
		line := FeedbackLine{
			Category:      result.Category,
			CategoryLabel: result.Category.Label(),
			Correct:       result.Correct,
			SelectedName:  "not selected",
			CorrectName:   venueName(result.CorrectVenue),
		}
		if result.Selected != nil {
			line.SelectedName = venueName(*result.Selected)
		}
		view.Lines = append(view.Lines, line)
	}

	return view
}

func venueName(v domain.Venue) string {
	if v.Name == "" {
		return string(v.ID)
	}
	return v.Name
}

func Headline(tier domain.Tier) string {
	switch tier {
	case domain.TierPerfect:
		return "Perfect! Every pick was right!"
	case domain.TierGreat:
		return "A very good plan!"
	case domain.TierGood:
		return "A good plan!"
	case domain.TierFair:
		return "Almost there, a little more thought would help."
	default:
		return "Let's build a better plan next time!"
	}
}

func Banner(band domain.HintBand) string {
	switch band {
	case domain.HintBandPerfect:
		return "Every spot matches. You understood what the customer wanted."
	case domain.HintBandGood:
		return "Nicely done. Read the customer's hints once more."
	default:
		return "Read the customer's preferences and hints carefully, then pick the spots that fit them."
	}
}
