package service

import (
	"context"
	"strings"
	"time"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/observability"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

// defaultTrendingDays bounds the answer-activity window when the caller
// doesn't supply one.
const defaultTrendingDays = 7

// FeedService produces the ranked question listings: trending, enhanced
// trending, most viewed and the per-user personalized feed. Ranked listings
// are cached briefly since they are identical for every caller.
type FeedService struct {
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewFeedService(questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// Trending ranks questions by recent answer activity, then views, then
// recency. days <= 0 falls back to the default window.
func (s *FeedService) Trending(ctx context.Context, days, limit int) ([]*models.Question, error) {
	if days <= 0 {
		days = defaultTrendingDays
	}
	observability.FeedRequests.WithLabelValues("trending").Inc()

	var questions []*models.Question
	err := cache.Aside(ctx, cache.TrendingKey("basic", days, limit), &questions, cache.TrendingTTL, func() error {
		since := time.Now().AddDate(0, 0, -days)
		var err error
		questions, err = s.questionRepo.Trending(ctx, since, limit)
		return err
	})
	return questions, err
}

// TrendingEnhanced ranks recent questions by the composite score
// views + 2*answers + 3*stars.
func (s *FeedService) TrendingEnhanced(ctx context.Context, days, limit int) ([]*models.Question, error) {
	if days <= 0 {
		days = defaultTrendingDays
	}
	observability.FeedRequests.WithLabelValues("enhanced").Inc()

	var questions []*models.Question
	err := cache.Aside(ctx, cache.TrendingKey("enhanced", days, limit), &questions, cache.TrendingTTL, func() error {
		since := time.Now().AddDate(0, 0, -days)
		var err error
		questions, err = s.questionRepo.TrendingEnhanced(ctx, since, limit)
		return err
	})
	return questions, err
}

// MostViewed ranks questions by lifetime view count, optionally restricted
// to questions created within the last days days.
func (s *FeedService) MostViewed(ctx context.Context, days, limit int) ([]*models.Question, error) {
	observability.FeedRequests.WithLabelValues("most_viewed").Inc()

	var cutoff *time.Time
	if days > 0 {
		t := time.Now().AddDate(0, 0, -days)
		cutoff = &t
	}

	var questions []*models.Question
	err := cache.Aside(ctx, cache.TrendingKey("most_viewed", days, limit), &questions, cache.TrendingTTL, func() error {
		var err error
		questions, err = s.questionRepo.MostViewed(ctx, limit, cutoff)
		return err
	})
	return questions, err
}

// PersonalizedFeed matches questions against the user's stated interests.
// Users with no stated interests fall back to the general recency listing;
// interests that match nothing yield an empty feed, not the fallback.
func (s *FeedService) PersonalizedFeed(ctx context.Context, userID uint, limit int) ([]*models.Question, error) {
	observability.FeedRequests.WithLabelValues("personalized").Inc()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tokens := tokenizeInterests(user.Interests)
	if len(tokens) == 0 {
		return s.questionRepo.List(ctx, limit, 0, userID)
	}

	return s.questionRepo.MatchInterests(ctx, tokens, limit)
}

// tokenizeInterests splits a comma separated interests string into trimmed,
// lowercased, non-empty tokens.
func tokenizeInterests(interests string) []string {
	var tokens []string
	for _, part := range strings.Split(interests, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
