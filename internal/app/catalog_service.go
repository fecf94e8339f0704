package app

import (
	"net/url"

	"storefront/internal/domain"
)

// CatalogService encapsulates product browsing use cases.
type CatalogService struct {
	catalog *domain.Catalog
}

// NewCatalogService creates a CatalogService over the given catalog.
func NewCatalogService(catalog *domain.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Listing is a filtered view of the catalog together with the canonical
// navigation query that reproduces it.
type Listing struct {
	Criteria domain.FilterCriteria
	Query    url.Values
	Items    []domain.Product
}

// Browse filters the catalog by the criteria carried in q.
func (s *CatalogService) Browse(q url.Values) Listing {
	c := CriteriaFromQuery(q)
	return Listing{
		Criteria: c,
		Query:    QueryFromCriteria(c),
		Items:    s.catalog.Filter(c),
	}
}

// Product returns a product and up to limit related products.
func (s *CatalogService) Product(id, limit int) (domain.Product, []domain.Product, bool) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return domain.Product{}, nil, false
	}
	return p, s.catalog.Related(p, limit), true
}

// Featured returns the products shown on the home page.
func (s *CatalogService) Featured(limit int) []domain.Product {
	return s.catalog.Featured(limit)
}

// Categories lists the catalog categories.
func (s *CatalogService) Categories() []string {
	return s.catalog.Categories()
}
