package chip

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog resolves label and help keys to display text.
type Catalog map[string]string

var (
	defaultCatalog     Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog is the built in English catalog.
func DefaultCatalog() Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := parseCatalog(catalogYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadCatalog reads a YAML mapping of keys to text. Keys missing from the
// result fall back to the default catalog in Text.
func LoadCatalog(r io.Reader) (Catalog, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseCatalog(d)
}

func parseCatalog(d []byte) (Catalog, error) {
	c := Catalog{}
	if err := yaml.Unmarshal(d, &c); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// Text returns the text of key, the default catalog's text, or key itself.
func (c Catalog) Text(key string) string {
	if s, ok := c[key]; ok {
		return s
	}
	if s, ok := DefaultCatalog()[key]; ok {
		return s
	}
	return key
}

// Label returns the display text of l.
func (c Catalog) Label(l Label) string {
	switch {
	case l.Literal:
		return l.Key
	case l.Key == "":
		return c.Text("unknown_table") + strconv.Itoa(l.Bin)
	}
	return c.Text(l.Key)
}

// Description returns the display name of v's chip family.
func (c Catalog) Description(r *Registry, v Variant) string {
	d, _ := r.Definition(v)
	return c.Text(d.Description)
}
