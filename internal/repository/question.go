package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/daksh1821/Ask-Away/internal/cache"
	"github.com/daksh1821/Ask-Away/internal/models"

	"gorm.io/gorm"
)

// QuestionRepository defines the interface for question data operations.
// Read methods take the viewer's user ID (0 = anonymous) so viewer-specific
// computed fields (starred status) can be resolved in the same query.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Question, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Question, error)
	Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Question, error)
	Delete(ctx context.Context, id uint) error
	Trending(ctx context.Context, since time.Time, limit int) ([]*models.Question, error)
	TrendingEnhanced(ctx context.Context, since time.Time, limit int) ([]*models.Question, error)
	MostViewed(ctx context.Context, limit int, since *time.Time) ([]*models.Question, error)
	MatchInterests(ctx context.Context, tokens []string, limit int) ([]*models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// applyQuestionDetails adds subqueries to fetch counts and starred status in a single query.
func (r *questionRepository) applyQuestionDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "questions.*, " +
		"(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted_at IS NULL) AS answers_count, " +
		"(SELECT COUNT(*) FROM stars WHERE stars.question_id = questions.id) AS stars_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM stars WHERE stars.question_id = questions.id AND stars.user_id = ?) AS starred", currentUserID)
	}

	return db.Select(selectQuery)
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	err := r.db.WithContext(ctx).Create(question).Error
	if err == nil {
		cache.InvalidateTrending(ctx)
	}
	return err
}

func (r *questionRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Question, error) {
	var question models.Question
	fetch := func() error {
		err := r.applyQuestionDetails(r.db.WithContext(ctx).Model(&models.Question{}), currentUserID).
			Preload("User").
			First(&question, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Question", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the anonymous read is cacheable; the starred flag makes responses
	// viewer-specific for logged-in readers.
	if currentUserID != 0 {
		if err := fetch(); err != nil {
			return nil, err
		}
		return &question, nil
	}

	if err := cache.Aside(ctx, cache.QuestionKey(id), &question, cache.QuestionTTL, fetch); err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.applyQuestionDetails(r.db.WithContext(ctx).Model(&models.Question{}), currentUserID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

func (r *questionRepository) Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Question, error) {
	var questions []*models.Question
	like := "%" + strings.ToLower(query) + "%"
	err := r.applyQuestionDetails(r.db.WithContext(ctx).Model(&models.Question{}), currentUserID).
		Preload("User").
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?", like, like, like).
		Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

// Delete removes a question together with its answers, stars and view log.
// Stars are hard-deleted; reputation earned from them is intentionally kept
// (scores record endorsements received, not surviving rows).
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Star{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.QuestionView{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Question{}, id)
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
			return models.NewNotFoundError("Question", id)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateQuestion(ctx, id)
	cache.InvalidateTrending(ctx)
	return nil
}

// Trending ranks questions by the number of answers created since the cutoff.
// Questions without qualifying answers are excluded by the inner join.
func (r *questionRepository) Trending(ctx context.Context, since time.Time, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Select("questions.*, COUNT(answers.id) AS answers_count, "+
			"(SELECT COUNT(*) FROM stars WHERE stars.question_id = questions.id) AS stars_count").
		Joins("JOIN answers ON answers.question_id = questions.id AND answers.deleted_at IS NULL AND answers.created_at >= ?", since).
		Group("questions.id").
		Order("answers_count DESC, views_count DESC, questions.created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

// TrendingEnhanced scores every question created since the cutoff as
// views + 2*answers + 3*stars. Answer and star counts are whole-life,
// not window-limited; only eligibility is filtered by creation date.
func (r *questionRepository) TrendingEnhanced(ctx context.Context, since time.Time, limit int) ([]*models.Question, error) {
	const answersSub = "(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted_at IS NULL)"
	const starsSub = "(SELECT COUNT(*) FROM stars WHERE stars.question_id = questions.id)"

	var questions []*models.Question
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Select("questions.*, "+
			answersSub+" AS answers_count, "+
			starsSub+" AS stars_count, "+
			"(questions.views_count + "+answersSub+" * 2 + "+starsSub+" * 3) AS trending_score").
		Where("questions.created_at >= ?", since).
		Order("trending_score DESC, questions.created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

func (r *questionRepository) MostViewed(ctx context.Context, limit int, since *time.Time) ([]*models.Question, error) {
	base := r.applyQuestionDetails(r.db.WithContext(ctx).Model(&models.Question{}), 0).
		Preload("User")
	if since != nil {
		base = base.Where("questions.created_at >= ?", *since)
	}

	var questions []*models.Question
	err := base.
		Order("views_count DESC, created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

// MatchInterests returns questions matching any token as a case-insensitive
// substring of title, content or tags, ordered by views then recency.
func (r *questionRepository) MatchInterests(ctx context.Context, tokens []string, limit int) ([]*models.Question, error) {
	var clauses []string
	var args []interface{}
	for _, tok := range tokens {
		like := "%" + strings.ToLower(tok) + "%"
		clauses = append(clauses, "LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?")
		args = append(args, like, like, like)
	}

	var questions []*models.Question
	err := r.applyQuestionDetails(r.db.WithContext(ctx).Model(&models.Question{}), 0).
		Preload("User").
		Where(strings.Join(clauses, " OR "), args...).
		Order("views_count DESC, created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}
