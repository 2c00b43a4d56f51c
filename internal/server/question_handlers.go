package server

import (
	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion handles POST /api/questions
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.Create(c.Context(), userID, req.Title, req.Content, req.Tags)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetQuestions handles GET /api/questions
func (s *Server) GetQuestions(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	questions, err := s.questionService.List(c.Context(), p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
		"limit":     p.Limit,
		"offset":    p.Offset,
	})
}

// SearchQuestions handles GET /api/questions/search?q=
func (s *Server) SearchQuestions(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	questions, err := s.questionService.Search(c.Context(), c.Query("q"), p.Limit, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
		"query":     c.Query("q"),
	})
}

// GetQuestion handles GET /api/questions/:id. Reading a question counts as a
// view; tracking is best effort and never fails the read.
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	question, err := s.questionService.Get(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	view := s.viewService.TrackView(c.UserContext(), id, userID, c.IP(), c.Get("User-Agent"))
	if view.Accepted {
		question.ViewsCount = view.TotalViews
	}

	return c.JSON(question)
}

// GetQuestionViews handles GET /api/questions/:id/views
func (s *Server) GetQuestionViews(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	total, err := s.viewService.ViewsCount(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"question_id": id,
		"views_count": total,
	})
}

// DeleteQuestion handles DELETE /api/questions/:id
func (s *Server) DeleteQuestion(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.questionService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Question deleted",
	})
}
