package handlers

import (
	"estore/internal/catalog"
	"estore/internal/services"
	"estore/internal/session"
)

type Deps struct {
	Catalog        *services.CatalogService
	CatalogHandler *CatalogHandler
	SearchHandler  *SearchHandler
	CartHandler    *CartHandler
}

func NewDeps(carts *session.Manager) *Deps {
	catalogSvc := services.NewCatalogService(catalog.Products(), catalog.Categories())

	return &Deps{
		Catalog:        catalogSvc,
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		SearchHandler:  &SearchHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Carts: carts, Catalog: catalogSvc},
	}
}
