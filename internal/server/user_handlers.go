package server

import (
	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Interests string `json:"interests"`
		WorkArea  string `json:"work_area"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    currentUserID(c),
		Interests: req.Interests,
		WorkArea:  req.WorkArea,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetTopContributors handles GET /api/users/top?metric=
func (s *Server) GetTopContributors(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	metric, err := service.ParseContributorMetric(c.Query("metric"))
	if err != nil {
		return respondServiceError(c, err)
	}

	users, err := s.userService.TopContributors(c.Context(), metric, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"metric": metric.String(),
		"users":  users,
	})
}

// GetPlatformStats handles GET /api/stats
func (s *Server) GetPlatformStats(c *fiber.Ctx) error {
	stats, err := s.userService.PlatformStats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
