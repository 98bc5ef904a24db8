package domain

type Tier string

const (
	TierPerfect  Tier = "perfect"
	TierGreat    Tier = "great"
	TierGood     Tier = "good"
	TierFair     Tier = "fair"
	TierTryAgain Tier = "try again"
)

// TierForScore maps a score to its headline tier.
func TierForScore(score int) Tier {
	switch {
	case score >= 100:
		return TierPerfect
	case score >= 80:
		return TierGreat
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierFair
	default:
		return TierTryAgain
	}
}

type HintBand string

const (
	HintBandPerfect HintBand = "perfect"
	HintBandGood    HintBand = "good"
	HintBandTry     HintBand = "try"
)

// HintBandForScore is the coarser split used for the feedback banner.
func HintBandForScore(score int) HintBand {
	switch TierForScore(score) {
	case TierPerfect:
		return HintBandPerfect
	case TierGreat, TierGood:
		return HintBandGood
	default:
		return HintBandTry
	}
}

type CategoryResult struct {
	Category     Category
	Correct      bool
	Selected     *Venue
	CorrectVenue Venue
}

type ScoreReport struct {
	Score           int
	CorrectCount    int
	TotalCategories int
	PerCategory     map[Category]CategoryResult
	// AllTags concatenates the selected venues' tags in category order.
	AllTags []string
}

func (r ScoreReport) Tier() Tier {
	return TierForScore(r.Score)
}

func (r ScoreReport) HintBand() HintBand {
	return HintBandForScore(r.Score)
}

// Results returns the per-category results in category order.
func (r ScoreReport) Results() []CategoryResult {
	out := make([]CategoryResult, 0, len(r.PerCategory))
	for _, category := range categories {
		if result, ok := r.PerCategory[category]; ok {
			out = append(out, result)
		}
	}
	return out
}

// ScorePlan compares the session's selections with the customer's correct
// plan. A missing selection counts as incorrect.
func ScorePlan(session Session, customer Customer, catalog Catalog) ScoreReport {
	report := ScoreReport{
		TotalCategories: CategoryCount,
		PerCategory:     make(map[Category]CategoryResult, CategoryCount),
		AllTags:         []string{},
	}

	for _, category := range categories {
		correctID := customer.CorrectPlan[category]
		correctVenue, ok := catalog.Venue(correctID)
		if !ok {
			correctVenue = Venue{ID: correctID, Category: category}
		}

		result := CategoryResult{Category: category, CorrectVenue: correctVenue}
		if selectedID, ok := session.Selections[category]; ok {
			if selected, found := catalog.Venue(selectedID); found {
				result.Selected = &selected
				report.AllTags = append(report.AllTags, selected.Tags...)
			} else {
				result.Selected = &Venue{ID: selectedID, Category: category}
			}
			result.Correct = selectedID == correctID
		}

		if result.Correct {
			report.CorrectCount++
		}
		report.PerCategory[category] = result
	}

	report.Score = report.CorrectCount * (100 / CategoryCount)
	return report
}
