package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/adapter/catalog"
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Len() != 9 {
		t.Fatalf("expected 9 products, got %d", c.Len())
	}
	p, ok := c.Get(1)
	if !ok {
		t.Fatal("expected product 1")
	}
	if p.Name != "Relaxed Fit T-shirt" || !p.Price.Equal(decimal.RequireFromString("24.99")) || p.Category != "t-shirts" {
		t.Errorf("unexpected product 1: %+v", p)
	}
	if p.Description == "" || p.Image == "" {
		t.Error("expected description and image to be loaded")
	}

	jackets := c.Filter(domain.FilterCriteria{Category: "jackets"})
	if len(jackets) != 3 {
		t.Errorf("expected 3 jackets, got %d", len(jackets))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantLen int
		wantErr bool
	}{
		{
			name:    "yaml",
			file:    "catalog.yaml",
			content: "products:\n  - id: 1\n    name: A\n    price: 10\n    category: x\n  - id: 2\n    name: B\n    price: \"20.50\"\n    category: y\n",
			wantLen: 2,
		},
		{
			name:    "json",
			file:    "catalog.json",
			content: `{"products":[{"id":1,"name":"A","price":"10","category":"x","image":"","description":""}]}`,
			wantLen: 1,
		},
		{
			name:    "duplicate ids",
			file:    "dup.yaml",
			content: "products:\n  - id: 1\n    price: 1\n  - id: 1\n    price: 2\n",
			wantErr: true,
		},
		{
			name:    "missing id",
			file:    "noid.yaml",
			content: "products:\n  - name: A\n    price: 1\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			file:    "extra.yaml",
			content: "products:\n  - id: 1\n    price: 1\n    colour: red\n",
			wantErr: true,
		},
		{
			name:    "bad price",
			file:    "price.json",
			content: `{"products":[{"id":1,"price":"cheap"}]}`,
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			c, err := catalog.Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if c.Len() != tc.wantLen {
				t.Fatalf("expected %d products, got %d", tc.wantLen, c.Len())
			}
		})
	}
}

func TestLoad_DuplicateIsDomainError(t *testing.T) {
	_, err := catalog.Parse([]byte("products:\n  - id: 3\n    price: 1\n  - id: 3\n    price: 1\n"), "yaml")
	if !errors.Is(err, domain.ErrDuplicateProduct) {
		t.Fatalf("expected ErrDuplicateProduct, got %v", err)
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 9 {
		t.Fatalf("expected default catalog, got %d products", c.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
