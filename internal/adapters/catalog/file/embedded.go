package file

import (
	"embed"
	"io/fs"
)

//go:embed data/customers.json data/places.json
var embeddedData embed.FS

// NewEmbeddedLoader serves the default dataset compiled into the binary.
func NewEmbeddedLoader() *JSONLoader {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		panic(err)
	}
	return newFSLoader(sub, "embedded")
}
