package repository

import (
	"context"

	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// PlatformStats holds platform-wide totals surfaced by the stats endpoint
// and consumed by reporting integrations.
type PlatformStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalQuestions int64 `json:"total_questions"`
	TotalAnswers   int64 `json:"total_answers"`
	TotalStars     int64 `json:"total_stars"`
	TotalViews     int64 `json:"total_views"`
}

// StatsRepository aggregates read-only platform totals.
type StatsRepository interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	db := r.db.WithContext(ctx)

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.TotalUsers},
		{&models.Question{}, &stats.TotalQuestions},
		{&models.Answer{}, &stats.TotalAnswers},
		{&models.Star{}, &stats.TotalStars},
		{&models.QuestionView{}, &stats.TotalViews},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return stats, nil
}
