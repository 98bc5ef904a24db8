package domain

import "strings"

type CustomerID string

type Customer struct {
	ID            CustomerID
	Name          string
	PersonaText   string
	CategoryHints map[Category]string
	CorrectPlan   map[Category]VenueID
}

// Hint returns the category-specific hint, falling back to the persona text
// when the customer has none for that category.
func (c Customer) Hint(category Category) string {
	if hint := c.CategoryHints[category]; strings.TrimSpace(hint) != "" {
		return hint
	}
	return c.PersonaText
}
