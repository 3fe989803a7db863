package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"estore/internal/catalog"
	applog "estore/internal/log"
	"estore/internal/services"
	"estore/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// filterSpecFromQuery builds the per-request filter from the page's query
// string. Bad values degrade (no raised errors): an unparsable bound falls
// back to the slider default, an unknown sort falls back to name order.
func filterSpecFromQuery(c *fiber.Ctx, category string) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		Category: category,
		Sort:     catalog.ParseSortKey(c.Query("sort")),
	}
	minS, maxS := c.Query("min"), c.Query("max")
	if minS != "" || maxS != "" {
		pr := catalog.PriceRange{Min: priceOr(minS, "0"), Max: priceOr(maxS, "1000")}
		spec.Price = &pr
	}
	return spec
}

func priceOr(s, fallback string) decimal.Decimal {
	if v, ok := validate.Price(s); ok {
		return v
	}
	v, _ := validate.Price(fallback)
	return v
}

// GET /
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Categories": h.Catalog.Categories(),
		"Featured":   h.Catalog.Featured(4),
	})
}

// GET /products
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	category := c.Query("category")
	products := h.Catalog.Query(filterSpecFromQuery(c, category))
	return render(c, "products", fiber.Map{
		"Categories": h.Catalog.Categories(),
		"Category":   category,
		"Sort":       c.Query("sort"),
		"Products":   products,
		"Count":      len(products),
		"TotalCount": h.Catalog.Count(),
	})
}

// GET /product/:id
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p, "Availability": catalog.Availability(p)})
}

// GET /categories
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return render(c, "categories", fiber.Map{"Categories": h.Catalog.Categories()})
}

// GET /category/:slug
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	slug, ok := validate.ID(c.Params("slug"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	cat, ok := h.Catalog.CategoryBySlug(slug)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	products := h.Catalog.Query(filterSpecFromQuery(c, cat.Name))
	return render(c, "category", fiber.Map{
		"Category": cat,
		"Sort":     c.Query("sort"),
		"Products": products,
		"Count":    len(products),
	})
}

// GET /api/v1/availability?productId=...
func (h *CatalogHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid productId"})
	}
	a, found := h.Catalog.Availability(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	return c.JSON(a)
}
