package service

import (
	"context"
	"strings"

	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

// AnswerService handles posting and listing answers and bumps the author's
// denormalized answer counter.
type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// Create posts an answer under questionID for userID.
func (s *AnswerService) Create(ctx context.Context, userID, questionID uint, content string) (*models.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}

	if _, err := s.questionRepo.GetByID(ctx, questionID, 0); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		Content:    content,
		UserID:     userID,
		QuestionID: questionID,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	if err := s.userRepo.IncrementAnswersCount(ctx, userID); err != nil {
		return nil, err
	}
	return answer, nil
}

// Get returns a single answer with its star count.
func (s *AnswerService) Get(ctx context.Context, id uint) (*models.Answer, error) {
	return s.answerRepo.GetByID(ctx, id)
}

// ListForQuestion returns a question's answers oldest first.
func (s *AnswerService) ListForQuestion(ctx context.Context, questionID uint) ([]*models.Answer, error) {
	if _, err := s.questionRepo.GetByID(ctx, questionID, 0); err != nil {
		return nil, err
	}
	return s.answerRepo.ListForQuestion(ctx, questionID)
}
