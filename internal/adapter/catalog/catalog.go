// Package catalog loads the static product catalog.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type document struct {
	Products []domain.Product `json:"products" yaml:"products"`
}

// Default returns the built-in catalog.
func Default() (*domain.Catalog, error) {
	return Parse(defaultCatalog, "yaml")
}

// Load reads a catalog file. Files ending in .json are decoded as JSON,
// anything else as YAML. An empty path loads the built-in catalog.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return Parse(raw, format)
}

// Parse decodes a catalog document in the given format ("json" or "yaml").
func Parse(raw []byte, format string) (*domain.Catalog, error) {
	var doc document
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}

	for _, p := range doc.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("parse catalog: product %q has no positive id", p.Name)
		}
	}
	return domain.NewCatalog(doc.Products)
}
