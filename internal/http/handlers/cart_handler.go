package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "estore/internal/log"
	"estore/internal/services"
	"estore/internal/session"
	"estore/internal/validate"
)

type CartHandler struct {
	Carts   *session.Manager
	Catalog *services.CatalogService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	store := h.Carts.Cart(ensureSID(c))
	return render(c, "cart", fiber.Map{
		"Entries":   store.Entries(),
		"Total":     store.Total().StringFixed(2),
		"ItemCount": store.ItemCount(),
	})
}

// POST /cart  (productId, qty)
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, found := h.Catalog.Get(productID)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	qty := validate.Qty(c.FormValue("qty"))
	h.Carts.Cart(sid).AddItem(p, qty)
	applog.Info(c, "cart.add", map[string]any{"product_id": productID, "qty": qty})
	return c.Redirect("/cart")
}

// POST /cart/update  (productId, qty) — qty of 0 removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty, ok := validate.QtyUpdate(c.FormValue("qty"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid qty")
	}
	h.Carts.Cart(sid).SetQuantity(productID, qty)
	return c.Redirect("/cart")
}

// POST /cart/remove  (productId)
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Carts.Cart(sid).RemoveItem(productID)
	return c.Redirect("/cart")
}

// POST /cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Carts.Cart(sid).Clear()
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/cart")
}
