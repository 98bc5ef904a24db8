package ports

import (
	"context"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
)

// CatalogLoader loads both collections or fails as a whole.
type CatalogLoader interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
