// Package file loads the venue and customer catalog from JSON or YAML
// documents, or from the dataset compiled into the binary.
package file

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
)

type placeRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Category    string   `json:"category" yaml:"category"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Detail      string   `json:"detail" yaml:"detail"`
	Age         string   `json:"age" yaml:"age"`
	DurationMin int      `json:"durationMin" yaml:"durationMin"`
	CostYen     int      `json:"costYen" yaml:"costYen"`
	RainyOK     bool     `json:"rainyOk" yaml:"rainyOk"`
	Tags        []string `json:"tags" yaml:"tags"`
	Photo       string   `json:"photo" yaml:"photo"`
}

type customerRecord struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	Persona       string            `json:"persona" yaml:"persona"`
	CategoryHints map[string]string `json:"categoryHints" yaml:"categoryHints"`
	CorrectPlan   map[string]string `json:"correctPlan" yaml:"correctPlan"`
}

// buildCatalog converts decoded records into a validated catalog. Any record
// problem fails the whole load.
func buildCatalog(customers []customerRecord, places []placeRecord) (domain.Catalog, error) {
	var errs []error

	venues := make([]domain.Venue, 0, len(places))
	for i, record := range places {
		category, err := domain.ParseCategory(record.Category)
		if err != nil {
			errs = append(errs, fmt.Errorf("place[%d] %q: %w", i, record.ID, err))
			continue
		}
		venues = append(venues, domain.Venue{
			ID:              domain.VenueID(strings.TrimSpace(record.ID)),
			Category:        category,
			Name:            record.Name,
			Description:     record.Description,
			Detail:          record.Detail,
			AgeTarget:       record.Age,
			DurationMinutes: record.DurationMin,
			CostAmount:      record.CostYen,
			RainSafe:        record.RainyOK,
			Tags:            append([]string(nil), record.Tags...),
			PhotoRef:        record.Photo,
		})
	}

	out := make([]domain.Customer, 0, len(customers))
	for i, record := range customers {
		hints, err := categoryMap(record.CategoryHints, func(v string) string { return v })
		if err != nil {
			errs = append(errs, fmt.Errorf("customer[%d] %q hints: %w", i, record.ID, err))
			continue
		}
		plan, err := categoryMap(record.CorrectPlan, func(v string) domain.VenueID {
			return domain.VenueID(strings.TrimSpace(v))
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("customer[%d] %q plan: %w", i, record.ID, err))
			continue
		}
		out = append(out, domain.Customer{
			ID:            domain.CustomerID(strings.TrimSpace(record.ID)),
			Name:          record.Name,
			PersonaText:   record.Persona,
			CategoryHints: hints,
			CorrectPlan:   plan,
		})
	}

	if len(errs) > 0 {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, errors.Join(errs...))
	}
	return domain.NewCatalog(out, venues)
}

func categoryMap[V any](raw map[string]string, convert func(string) V) (map[domain.Category]V, error) {
	out := make(map[domain.Category]V, len(raw))
	for key, value := range raw {
		category, err := domain.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		out[category] = convert(value)
	}
	return out, nil
}
