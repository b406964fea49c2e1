package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFollows handles GET /api/v1/follow
// @Summary List subscriptions
// @Description List the authors the authenticated user follows, optionally filtered by username substring
// @Tags follow
// @Produce json
// @Security BearerAuth
// @Param search query string false "Filter by followed author's username"
// @Success 200 {array} models.Follow
// @Router /follow [get]
func (s *Server) GetFollows(c *fiber.Ctx) error {
	follows, err := s.followService.ListFollows(c.Context(), currentUserID(c), c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(follows)
}

// CreateFollow handles POST /api/v1/follow
// @Summary Follow an author
// @Description Subscribe to an author's posts. Following twice is a no-op; following yourself is rejected.
// @Tags follow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{following=string} true "Username of the author to follow"
// @Success 201 {object} models.Follow
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /follow [post]
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	var req struct {
		Following string `json:"following"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Following == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("following is required"))
	}

	follow, err := s.followService.Follow(c.Context(), currentUserID(c), req.Following)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// DeleteFollow handles DELETE /api/v1/follow/:username
// @Summary Unfollow an author
// @Description Remove a subscription. Unfollowing an author you do not follow is 404.
// @Tags follow
// @Security BearerAuth
// @Param username path string true "Username of the author to unfollow"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /follow/{username} [delete]
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("username is required"))
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), username); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
