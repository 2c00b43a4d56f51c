package repository

import (
	"context"
	"errors"
	"time"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// ViewRepository persists question view events and the denormalized
// per-question view counter.
type ViewRepository interface {
	HasRecentByUser(ctx context.Context, questionID, userID uint, since time.Time) (bool, error)
	HasRecentByIP(ctx context.Context, questionID uint, ip string, since time.Time) (bool, error)
	Track(ctx context.Context, view *models.QuestionView) error
	ViewsCount(ctx context.Context, questionID uint) (int, error)
}

type viewRepository struct {
	db *gorm.DB
}

// NewViewRepository creates a new view repository
func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) HasRecentByUser(ctx context.Context, questionID, userID uint, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.QuestionView{}).
		Where("question_id = ? AND user_id = ? AND created_at > ?", questionID, userID, since).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *viewRepository) HasRecentByIP(ctx context.Context, questionID uint, ip string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.QuestionView{}).
		Where("question_id = ? AND ip_address = ? AND created_at > ?", questionID, ip, since).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Track appends the view event and bumps the question's views_count in one
// transaction; a failure of either rolls back both. The counter update is
// relative so concurrent accepted views cannot lose increments.
func (r *viewRepository) Track(ctx context.Context, view *models.QuestionView) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(view).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Question{}).
			Where("id = ?", view.QuestionID).
			Update("views_count", gorm.Expr("views_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Question", view.QuestionID)
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateQuestion(ctx, view.QuestionID)
	cache.InvalidateTrending(ctx)
	return nil
}

// ViewsCount reads the denormalized counter, not a live count of view rows;
// the two may diverge if the view log is pruned.
func (r *viewRepository) ViewsCount(ctx context.Context, questionID uint) (int, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Select("views_count").
		First(&question, questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Question", questionID)
		}
		return 0, models.NewInternalError(err)
	}
	return question.ViewsCount, nil
}
