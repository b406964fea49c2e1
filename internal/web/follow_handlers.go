package web

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ProfileFollow subscribes the viewer to the author and returns to the
// profile. Following yourself or someone you already follow is a no-op.
func (h *Handler) ProfileFollow(c *fiber.Ctx) error {
	h.userContext(c)
	username := c.Params("username")

	_, err := h.follows.Follow(c.Context(), h.sessionUserID(c), username)
	if err != nil {
		var appErr *models.AppError
		switch {
		case asAppError(err, &appErr) && appErr.Code == "NOT_FOUND":
			return h.NotFound(c)
		case asAppError(err, &appErr) && appErr.Code == "VALIDATION_ERROR":
			// Self-follow lands back on the profile without a subscription.
		default:
			return err
		}
	}
	return c.Redirect("/profile/"+username, fiber.StatusFound)
}

// ProfileUnfollow removes the subscription and returns to the profile.
// Self-unfollow never attempts a delete.
func (h *Handler) ProfileUnfollow(c *fiber.Ctx) error {
	h.userContext(c)
	username := c.Params("username")

	if me := h.currentUser(c); me != nil && me.Username == username {
		return c.Redirect("/profile/"+username, fiber.StatusFound)
	}

	if err := h.follows.Unfollow(c.Context(), h.sessionUserID(c), username); err != nil {
		var appErr *models.AppError
		if asAppError(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return h.NotFound(c)
		}
		return err
	}
	return c.Redirect("/profile/"+username, fiber.StatusFound)
}
