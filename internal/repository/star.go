package repository

import (
	"context"
	"errors"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// StarRepository maintains the star ledger: the live set of star rows plus
// the reputation counters that must stay consistent with it. Every mutation
// pairs the row change with the reputation adjustment in one transaction.
type StarRepository interface {
	Create(ctx context.Context, star *models.Star, answerAuthorID uint) error
	Delete(ctx context.Context, userID, questionID, answerAuthorID uint) error
	FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*models.Star, error)
	CountForAnswer(ctx context.Context, answerID uint) (int64, error)
}

type starRepository struct {
	db *gorm.DB
}

// NewStarRepository creates a new star repository
func NewStarRepository(db *gorm.DB) StarRepository {
	return &starRepository{db: db}
}

// Create inserts the star row and increments the answer author's reputation.
// Both happen in one transaction: a failure of either leaves neither applied.
// The (user_id, question_id) unique index closes the race between two
// concurrent star attempts; a duplicate surfaces as a Conflict error.
func (r *starRepository) Create(ctx context.Context, star *models.Star, answerAuthorID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(star).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", answerAuthorID).
			Update("reputation", gorm.Expr("reputation + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("You have already starred an answer for this question")
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, answerAuthorID)
	cache.InvalidateQuestion(ctx, star.QuestionID)
	cache.InvalidateTrending(ctx)
	return nil
}

// Delete removes the star for (user, question) and decrements the answer
// author's reputation. The decrement is guarded inside the UPDATE itself so
// reputation never drops below zero, even under concurrent unstars.
func (r *starRepository) Delete(ctx context.Context, userID, questionID, answerAuthorID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND question_id = ?", userID, questionID).
			Delete(&models.Star{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).
			Where("id = ? AND reputation > 0", answerAuthorID).
			Update("reputation", gorm.Expr("reputation - ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Star", questionID)
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, answerAuthorID)
	cache.InvalidateQuestion(ctx, questionID)
	cache.InvalidateTrending(ctx)
	return nil
}

// FindByUserAndQuestion returns the live star for the pair, or (nil, nil)
// when the user has not starred anything under the question.
func (r *starRepository) FindByUserAndQuestion(ctx context.Context, userID, questionID uint) (*models.Star, error) {
	var star models.Star
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&star).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &star, nil
}

func (r *starRepository) CountForAnswer(ctx context.Context, answerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Star{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
