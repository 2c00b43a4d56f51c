// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// ContributorMetric selects the ranking column for top-contributor listings.
// It is a closed enumeration; there is no dynamic column dispatch.
type ContributorMetric int

const (
	MetricReputation ContributorMetric = iota
	MetricQuestions
	MetricAnswers
)

func (m ContributorMetric) String() string {
	switch m {
	case MetricQuestions:
		return "questions"
	case MetricAnswers:
		return "answers"
	default:
		return "reputation"
	}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id uint, updates map[string]interface{}) error
	IncrementQuestionsCount(ctx context.Context, id uint) error
	IncrementAnswersCount(ctx context.Context, id uint) error
	TopContributors(ctx context.Context, metric ContributorMetric, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateProfile applies a column-scoped update. Structs read through GetByID
// may be cache-hydrated and are missing the password hash (json:"-"), so a
// whole-row Save of one would wipe it; only the named columns are written.
func (r *userRepository) UpdateProfile(ctx context.Context, id uint, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// IncrementQuestionsCount bumps the denormalized question counter. The update
// is relative so concurrent writers cannot lose increments.
func (r *userRepository) IncrementQuestionsCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("questions_count", gorm.Expr("questions_count + ?", 1)).Error
	if err == nil {
		cache.InvalidateUser(ctx, id)
	}
	return err
}

// IncrementAnswersCount bumps the denormalized answer counter.
func (r *userRepository) IncrementAnswersCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("answers_count", gorm.Expr("answers_count + ?", 1)).Error
	if err == nil {
		cache.InvalidateUser(ctx, id)
	}
	return err
}

func (r *userRepository) TopContributors(ctx context.Context, metric ContributorMetric, limit int) ([]models.User, error) {
	var column string
	switch metric {
	case MetricQuestions:
		column = "questions_count"
	case MetricAnswers:
		column = "answers_count"
	default:
		column = "reputation"
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Order(column + " DESC, created_at ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
