package service

import (
	"context"
	"strings"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

type UserService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
}

type UpdateProfileInput struct {
	UserID    uint
	Interests string
	WorkArea  string
}

func NewUserService(userRepo repository.UserRepository, statsRepo repository.StatsRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxInterestsLen = 500
	const maxWorkAreaLen = 200

	// Column-scoped update: the loaded user may come from the cache, which
	// does not carry the password hash, so it must never be saved whole.
	updates := map[string]interface{}{}
	if in.Interests != "" {
		if len(in.Interests) > maxInterestsLen {
			return nil, models.NewValidationError("Interests too long (max 500 characters)")
		}
		updates["interests"] = in.Interests
	}
	if in.WorkArea != "" {
		if len(in.WorkArea) > maxWorkAreaLen {
			return nil, models.NewValidationError("Work area too long (max 200 characters)")
		}
		updates["work_area"] = in.WorkArea
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.userRepo.UpdateProfile(ctx, in.UserID, updates); err != nil {
		return nil, err
	}

	// Re-read after the cache invalidation so the caller sees fresh state.
	return s.userRepo.GetByID(ctx, in.UserID)
}

// ParseContributorMetric maps a query string value to a leaderboard metric.
// An empty value defaults to reputation.
func ParseContributorMetric(value string) (repository.ContributorMetric, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "reputation":
		return repository.MetricReputation, nil
	case "questions":
		return repository.MetricQuestions, nil
	case "answers":
		return repository.MetricAnswers, nil
	default:
		return repository.MetricReputation, models.NewValidationError("metric must be one of reputation, questions, answers")
	}
}

func (s *UserService) TopContributors(ctx context.Context, metric repository.ContributorMetric, limit int) ([]models.User, error) {
	return s.userRepo.TopContributors(ctx, metric, limit)
}

// PlatformStats returns platform-wide totals. The counts are expensive full
// table scans, so the result is served cache-aside.
func (s *UserService) PlatformStats(ctx context.Context) (*repository.PlatformStats, error) {
	var stats repository.PlatformStats
	err := cache.Aside(ctx, cache.StatsKey, &stats, cache.StatsTTL, func() error {
		fetched, err := s.statsRepo.PlatformStats(ctx)
		if err != nil {
			return err
		}
		stats = *fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
