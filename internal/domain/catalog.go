package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the read-only customer and venue data a session runs against.
// It is safe to share between goroutines once built.
type Catalog struct {
	customers     []Customer
	venues        []Venue
	customerIndex map[CustomerID]int
	venueIndex    map[VenueID]int
}

// NewCatalog validates the input and returns a catalog preserving the source
// order of both collections.
func NewCatalog(customers []Customer, venues []Venue) (Catalog, error) {
	c := Catalog{
		customers:     make([]Customer, len(customers)),
		venues:        make([]Venue, len(venues)),
		customerIndex: make(map[CustomerID]int, len(customers)),
		venueIndex:    make(map[VenueID]int, len(venues)),
	}
	copy(c.customers, customers)
	copy(c.venues, venues)

	var errs []error
	for i, venue := range c.venues {
		if err := validateVenue(venue); err != nil {
			errs = append(errs, fmt.Errorf("venue[%d]: %w", i, err))
			continue
		}
		if _, ok := c.venueIndex[venue.ID]; ok {
			errs = append(errs, fmt.Errorf("venue[%d]: duplicate id %q", i, venue.ID))
			continue
		}
		c.venueIndex[venue.ID] = i
	}

	for i, customer := range c.customers {
		if strings.TrimSpace(string(customer.ID)) == "" {
			errs = append(errs, fmt.Errorf("customer[%d]: id is required", i))
			continue
		}
		if _, ok := c.customerIndex[customer.ID]; ok {
			errs = append(errs, fmt.Errorf("customer[%d]: duplicate id %q", i, customer.ID))
			continue
		}
		if err := c.validatePlan(customer); err != nil {
			errs = append(errs, fmt.Errorf("customer %q: %w", customer.ID, err))
			continue
		}
		c.customerIndex[customer.ID] = i
	}

	if len(errs) > 0 {
		return Catalog{}, fmt.Errorf("%w: %w", ErrCatalogLoad, errors.Join(errs...))
	}

	return c, nil
}

func validateVenue(v Venue) error {
	if strings.TrimSpace(string(v.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if !v.Category.Valid() {
		return fmt.Errorf("unknown category %q", v.Category)
	}
	if v.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if v.CostAmount < 0 {
		return fmt.Errorf("cost must not be negative")
	}
	return nil
}

func (c Catalog) validatePlan(customer Customer) error {
	for category := range customer.CorrectPlan {
		if !category.Valid() {
			return fmt.Errorf("correct plan names unknown category %q", category)
		}
	}
	for _, category := range categories {
		id, ok := customer.CorrectPlan[category]
		if !ok {
			return fmt.Errorf("correct plan is missing %s", category)
		}
		venue, ok := c.Venue(id)
		if !ok {
			return fmt.Errorf("correct plan %s names unknown venue %q", category, id)
		}
		if venue.Category != category {
			return fmt.Errorf("correct plan %s names %s venue %q", category, venue.Category, id)
		}
	}
	return nil
}

func (c Catalog) Customers() []Customer {
	out := make([]Customer, len(c.customers))
	copy(out, c.customers)
	return out
}

func (c Catalog) Venues() []Venue {
	out := make([]Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c Catalog) CustomerCount() int {
	return len(c.customers)
}

func (c Catalog) CustomerAt(i int) Customer {
	return c.customers[i]
}

func (c Catalog) Customer(id CustomerID) (Customer, bool) {
	i, ok := c.customerIndex[id]
	if !ok {
		return Customer{}, false
	}
	return c.customers[i], true
}

func (c Catalog) Venue(id VenueID) (Venue, bool) {
	i, ok := c.venueIndex[id]
	if !ok {
		return Venue{}, false
	}
	return c.venues[i], true
}

// VenuesIn returns the venues of one category in catalog order.
func (c Catalog) VenuesIn(category Category) []Venue {
	out := make([]Venue, 0)
	for _, venue := range c.venues {
		if venue.Category == category {
			out = append(out, venue)
		}
	}
	return out
}
