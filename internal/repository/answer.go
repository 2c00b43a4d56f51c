package repository

import (
	"context"
	"errors"

	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// AnswerRepository defines the interface for answer data operations
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	ListForQuestion(ctx context.Context, questionID uint) ([]*models.Answer, error)
	CountForQuestion(ctx context.Context, questionID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).
		Select("answers.*, (SELECT COUNT(*) FROM stars WHERE stars.answer_id = answers.id) AS stars_count").
		First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Answer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

// ListForQuestion returns a question's answers oldest first, the reading
// order of a thread.
func (r *answerRepository) ListForQuestion(ctx context.Context, questionID uint) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := r.db.WithContext(ctx).
		Select("answers.*, (SELECT COUNT(*) FROM stars WHERE stars.answer_id = answers.id) AS stars_count").
		Preload("User").
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return answers, nil
}

func (r *answerRepository) CountForQuestion(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
