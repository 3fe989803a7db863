package services

import (
	"estore/internal/catalog"
	"estore/internal/domain"
)

// CatalogService owns the catalog snapshot handed to it at construction and
// answers every read the storefront needs. It never mutates the snapshot.
type CatalogService struct {
	products   []domain.Product
	categories []domain.Category
}

func NewCatalogService(products []domain.Product, categories []domain.Category) *CatalogService {
	return &CatalogService{products: products, categories: categories}
}

func (s *CatalogService) Categories() []domain.Category {
	return s.categories
}

func (s *CatalogService) CategoryBySlug(slug string) (domain.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Featured is the home-page strip: the first n catalog products.
func (s *CatalogService) Featured(n int) []domain.Product {
	if n > len(s.products) {
		n = len(s.products)
	}
	out := make([]domain.Product, n)
	copy(out, s.products[:n])
	return out
}

func (s *CatalogService) Get(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Query runs the filter/sort pipeline over the catalog snapshot.
func (s *CatalogService) Query(spec catalog.FilterSpec) []domain.Product {
	return catalog.Query(s.products, spec)
}

func (s *CatalogService) Count() int { return len(s.products) }

func (s *CatalogService) Availability(id string) (domain.Availability, bool) {
	p, ok := s.Get(id)
	if !ok {
		return domain.Availability{Status: "OUT_OF_STOCK"}, false
	}
	return catalog.Availability(p), true
}
