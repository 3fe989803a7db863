package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"estore/internal/domain"
	applog "estore/internal/log"
	"estore/internal/services"
	"estore/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// GET /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

// GET /register
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	switch {
	case !okName:
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter your name", "CSRFToken": c.Cookies("csrf_")})
	case !okEmail:
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid email", "CSRFToken": c.Cookies("csrf_")})
	case !validate.Password(pass):
		return c.Status(400).Render("register", fiber.Map{"Err": "Password needs 8+ chars with upper, lower, digit and symbol", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Register(sid, name, email, pass)
	if errors.Is(err, services.ErrEmailTaken) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Email already registered", "CSRFToken": c.Cookies("csrf_")})
	}
	if err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("register", fiber.Map{"Err": "Could not create account. Please retry.", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/")
}

// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

// GET /profile (behind RequireUser)
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return render(c, "profile", fiber.Map{"Err": "", "Saved": false})
}

// POST /profile (behind RequireUser)
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}
	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	if !okName || !okEmail {
		return c.Status(400).Render("profile", fiber.Map{"User": u, "Err": "Enter a valid name and email", "CSRFToken": c.Cookies("csrf_")})
	}
	if err := h.Auth.UpdateProfile(u.ID, name, email); err != nil {
		applog.Error(c, "profile.update.fail", err, map[string]any{"user_id": u.ID})
		return c.Status(500).Render("profile", fiber.Map{"User": u, "Err": "Could not save changes", "CSRFToken": c.Cookies("csrf_")})
	}
	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	u.Name, u.Email = name, email
	return render(c, "profile", fiber.Map{"Err": "", "Saved": true})
}
