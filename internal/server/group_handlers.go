package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/v1/groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /groups [get]
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/v1/groups/:id
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{id} [get]
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupService.GetGroup(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}
