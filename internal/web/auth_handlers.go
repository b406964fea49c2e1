package web

import (
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SignupForm renders the registration form.
func (h *Handler) SignupForm(c *fiber.Ctx) error {
	if h.sessionUserID(c) != 0 {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("signup", fiber.Map{
		"Title":    "Sign up",
		"Username": "",
		"Email":    "",
	})
}

// Signup registers the visitor and logs them straight in.
func (h *Handler) Signup(c *fiber.Ctx) error {
	user, err := h.users.Signup(c.Context(), service.SignupInput{
		Username:  c.FormValue("username"),
		Email:     c.FormValue("email"),
		Password:  c.FormValue("password"),
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
	})
	if err != nil {
		msg := "Could not create the account"
		var appErr *models.AppError
		if asAppError(err, &appErr) {
			msg = appErr.Message
		}
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
			"Title":    "Sign up",
			"Error":    msg,
			"Username": c.FormValue("username"),
			"Email":    c.FormValue("email"),
		})
	}

	if err := h.login(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

// LoginForm renders the login form.
func (h *Handler) LoginForm(c *fiber.Ctx) error {
	if h.sessionUserID(c) != 0 {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{
		"Title":    "Log in",
		"Username": "",
		"Next":     c.Query("next"),
	})
}

// Login authenticates the form credentials and starts a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	user, err := h.users.Authenticate(c.Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title":    "Log in",
			"Error":    "Invalid username or password",
			"Username": c.FormValue("username"),
			"Next":     c.FormValue("next"),
		})
	}

	if err := h.login(c, user.ID); err != nil {
		return err
	}

	next := c.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	return c.Redirect(next, fiber.StatusFound)
}

// Logout ends the session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.logout(c)
	return c.Redirect("/", fiber.StatusFound)
}
