package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Customers []customerRecord `yaml:"customers"`
	Places    []placeRecord    `yaml:"places"`
}

// YAMLLoader reads both collections from a single YAML document with
// top-level customers and places lists.
type YAMLLoader struct {
	path string
}

var _ ports.CatalogLoader = (*YAMLLoader)(nil)

func NewYAMLLoader(path string) (*YAMLLoader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: catalog path is required", domain.ErrCatalogLoad)
	}
	return &YAMLLoader{path: filepath.Clean(path)}, nil
}

func (l *YAMLLoader) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: read %s: %w", domain.ErrCatalogLoad, l.path, err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: decode %s: %w", domain.ErrCatalogLoad, l.path, err)
	}

	return buildCatalog(doc.Customers, doc.Places)
}
