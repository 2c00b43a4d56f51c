package service

import (
	"context"
	"strings"

	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

// QuestionService handles the question lifecycle and keeps the author's
// denormalized question counter in step with it.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// Create persists a new question for userID and bumps the author's
// questions_count.
func (s *QuestionService) Create(ctx context.Context, userID uint, title, content, tags string) (*models.Question, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if len(title) > 300 {
		return nil, models.NewValidationError("title must be 300 characters or fewer")
	}
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}

	question := &models.Question{
		Title:   title,
		Content: content,
		Tags:    strings.TrimSpace(tags),
		UserID:  userID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	if err := s.userRepo.IncrementQuestionsCount(ctx, userID); err != nil {
		return nil, err
	}
	return question, nil
}

// Get returns a question with its computed counts. currentUserID of 0 means
// anonymous and leaves Starred false.
func (s *QuestionService) Get(ctx context.Context, id, currentUserID uint) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id, currentUserID)
}

// List returns questions newest first.
func (s *QuestionService) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Question, error) {
	return s.questionRepo.List(ctx, limit, offset, currentUserID)
}

// Search matches the query case-insensitively against titles, content and
// tags. An empty query falls back to the plain listing.
func (s *QuestionService) Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Question, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.questionRepo.List(ctx, limit, 0, currentUserID)
	}
	return s.questionRepo.Search(ctx, query, limit, currentUserID)
}

// Delete removes the question and everything hanging off it. Only the author
// may delete.
func (s *QuestionService) Delete(ctx context.Context, id, userID uint) error {
	question, err := s.questionRepo.GetByID(ctx, id, 0)
	if err != nil {
		return err
	}
	if question.UserID != userID {
		return models.NewUnauthorizedError("Only the author can delete this question")
	}
	return s.questionRepo.Delete(ctx, id)
}
