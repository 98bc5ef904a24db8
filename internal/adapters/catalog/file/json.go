package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/bytedance/sonic"
)

const (
	CustomersFile = "customers.json"
	PlacesFile    = "places.json"
)

// JSONLoader reads customers.json and places.json from one directory.
type JSONLoader struct {
	fsys fs.FS
	name string
}

var _ ports.CatalogLoader = (*JSONLoader)(nil)

func NewJSONLoader(dir string) (*JSONLoader, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: catalog directory is required", domain.ErrCatalogLoad)
	}
	clean := filepath.Clean(dir)
	return &JSONLoader{fsys: os.DirFS(clean), name: clean}, nil
}

func newFSLoader(fsys fs.FS, name string) *JSONLoader {
	return &JSONLoader{fsys: fsys, name: name}
}

func (l *JSONLoader) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	var customers []customerRecord
	if err := l.decode(CustomersFile, &customers); err != nil {
		return domain.Catalog{}, err
	}
	var places []placeRecord
	if err := l.decode(PlacesFile, &places); err != nil {
		return domain.Catalog{}, err
	}

	return buildCatalog(customers, places)
}

func (l *JSONLoader) decode(file string, target any) error {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return fmt.Errorf("%w: read %s/%s: %w", domain.ErrCatalogLoad, l.name, file, err)
	}
	if err := sonic.ConfigStd.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: decode %s/%s: %w", domain.ErrCatalogLoad, l.name, file, err)
	}
	return nil
}
