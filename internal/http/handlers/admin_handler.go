package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "estore/internal/log"
	"estore/internal/repos"
	"estore/internal/services"
	"estore/internal/session"
	"estore/internal/validate"
)

// Admin screens are read-only over the catalog (its mutation is owned by an
// external catalog-management tool) plus user administration.
type AdminHandler struct {
	Catalog *services.CatalogService
	Users   *repos.UserRepo
	Carts   *session.Manager
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount":  h.Catalog.Count(),
		"CategoryCount": len(h.Catalog.Categories()),
		"UserCount":     len(users),
	})
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	products := h.Catalog.Query(filterSpecFromQuery(c, c.Query("category")))
	return render(c, "admin_products", fiber.Map{"Products": products, "Count": len(products)})
}

// GET /admin/users
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// POST /admin/users/:id/delete
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing user id")
	}
	sids, err := h.Users.DeleteUserCascade(id)
	if err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	for _, sid := range sids {
		h.Carts.Forget(sid)
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
