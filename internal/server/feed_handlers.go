package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTrending handles GET /api/feed/trending
func (s *Server) GetTrending(c *fiber.Ctx) error {
	p := parsePagination(c, 10)
	days := c.QueryInt("days", 0)

	questions, err := s.feedService.Trending(c.Context(), days, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}

// GetTrendingEnhanced handles GET /api/feed/trending/enhanced
func (s *Server) GetTrendingEnhanced(c *fiber.Ctx) error {
	p := parsePagination(c, 10)
	days := c.QueryInt("days", 0)

	questions, err := s.feedService.TrendingEnhanced(c.Context(), days, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}

// GetMostViewed handles GET /api/feed/most-viewed
func (s *Server) GetMostViewed(c *fiber.Ctx) error {
	p := parsePagination(c, 10)
	days := c.QueryInt("days", 0)

	questions, err := s.feedService.MostViewed(c.Context(), days, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}

// GetPersonalizedFeed handles GET /api/feed
func (s *Server) GetPersonalizedFeed(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	questions, err := s.feedService.PersonalizedFeed(c.Context(), currentUserID(c), p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}
