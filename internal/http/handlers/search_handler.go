package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"estore/internal/catalog"
	applog "estore/internal/log"
	"estore/internal/services"
	"estore/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// GET /search?q=...
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: show empty search without errors
		return render(c, "search", fiber.Map{"Q": "", "Products": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Products": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	category := strings.TrimSpace(c.Query("category"))

	sort := catalog.ParseSortKey(c.Query("sort"))
	if c.Query("sort") == "" {
		sort = catalog.SortRelevance // search defaults to match order, not name
	}
	products := h.Catalog.Query(catalog.FilterSpec{
		Category:   category,
		SearchTerm: q,
		Sort:       sort,
	})

	return render(c, "search", fiber.Map{
		"Q": q, "Category": category,
		"Products": products, "Count": len(products),
	})
}
