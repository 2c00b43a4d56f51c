package server

import (
	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StarQuestion handles POST /api/questions/:id/star. The body names which
// answer under the question is being endorsed.
func (s *Server) StarQuestion(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AnswerID uint `json:"answer_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.AnswerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("answer_id is required"))
	}

	star, err := s.starService.Star(c.Context(), currentUserID(c), questionID, req.AnswerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(star)
}

// UnstarQuestion handles DELETE /api/questions/:id/star
func (s *Server) UnstarQuestion(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.starService.Unstar(c.Context(), currentUserID(c), questionID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Star removed",
	})
}
