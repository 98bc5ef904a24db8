package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryMorning   Category = "morning"
	CategoryLunch     Category = "lunch"
	CategoryAfternoon Category = "afternoon"
	CategoryNight     Category = "night"
	CategoryStay      Category = "stay"
)

// categories is the interview step order and the itinerary order.
var categories = [...]Category{
	CategoryMorning,
	CategoryLunch,
	CategoryAfternoon,
	CategoryNight,
	CategoryStay,
}

const CategoryCount = len(categories)

func Categories() []Category {
	out := make([]Category, CategoryCount)
	copy(out, categories[:])
	return out
}

// CategoryAt returns the category for a step index, or false when the index
// is outside [0, CategoryCount).
func CategoryAt(index int) (Category, bool) {
	if index < 0 || index >= CategoryCount {
		return "", false
	}
	return categories[index], true
}

func (c Category) Index() int {
	for i, candidate := range categories {
		if candidate == c {
			return i
		}
	}
	return -1
}

func (c Category) Valid() bool {
	return c.Index() >= 0
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return c, nil
}

func (c Category) Label() string {
	switch c {
	case CategoryMorning:
		return "Morning sightseeing"
	case CategoryLunch:
		return "Lunch"
	case CategoryAfternoon:
		return "Afternoon sightseeing"
	case CategoryNight:
		return "Evening"
	case CategoryStay:
		return "Stay"
	default:
		return string(c)
	}
}

// TimeSlot is the fixed itinerary slot shown on the plan timeline.
func (c Category) TimeSlot() string {
	switch c {
	case CategoryMorning:
		return "09:00-11:00"
	case CategoryLunch:
		return "12:00-13:00"
	case CategoryAfternoon:
		return "13:30-16:00"
	case CategoryNight:
		return "17:00-19:00"
	case CategoryStay:
		return "19:00-"
	default:
		return ""
	}
}
