package domain

type VenueID string

type Venue struct {
	ID              VenueID
	Category        Category
	Name            string
	Description     string
	Detail          string
	AgeTarget       string
	DurationMinutes int
	CostAmount      int
	RainSafe        bool
	Tags            []string
	PhotoRef        string
}

func (v Venue) IsFree() bool {
	return v.CostAmount == 0
}
