// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/observability"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

// StarService enforces the star business rules: the target answer must
// belong to the named question, users cannot endorse their own answers, and
// a user holds at most one star per question.
type StarService struct {
	starRepo   repository.StarRepository
	answerRepo repository.AnswerRepository
}

func NewStarService(starRepo repository.StarRepository, answerRepo repository.AnswerRepository) *StarService {
	return &StarService{
		starRepo:   starRepo,
		answerRepo: answerRepo,
	}
}

// Star endorses the given answer on behalf of userID. On success the answer
// author's reputation has been incremented atomically with the star row.
func (s *StarService) Star(ctx context.Context, userID, questionID, answerID uint) (*models.Star, error) {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.QuestionID != questionID {
		// An answer under a different question is not found from the
		// caller's point of view.
		return nil, models.NewNotFoundError("Answer", answerID)
	}
	if answer.UserID == userID {
		return nil, models.NewInvalidOperationError("You cannot star your own answer")
	}

	star := &models.Star{
		UserID:     userID,
		QuestionID: questionID,
		AnswerID:   answerID,
	}
	if err := s.starRepo.Create(ctx, star, answer.UserID); err != nil {
		return nil, err
	}

	observability.StarEvents.WithLabelValues("starred").Inc()
	return star, nil
}

// Unstar removes the caller's star under the question and reverses the
// reputation grant. Returns NotFound when there is nothing to remove.
func (s *StarService) Unstar(ctx context.Context, userID, questionID uint) error {
	star, err := s.starRepo.FindByUserAndQuestion(ctx, userID, questionID)
	if err != nil {
		return err
	}
	if star == nil {
		return models.NewNotFoundError("Star", questionID)
	}

	// The decrement targets the starred answer's author. If the answer was
	// deleted in the meantime its stars were cascade-removed with it, so the
	// row found above still names a live answer.
	answer, err := s.answerRepo.GetByID(ctx, star.AnswerID)
	if err != nil {
		return err
	}

	if err := s.starRepo.Delete(ctx, userID, questionID, answer.UserID); err != nil {
		return err
	}

	observability.StarEvents.WithLabelValues("unstarred").Inc()
	return nil
}

// StarsForAnswer returns the number of live stars targeting the answer.
func (s *StarService) StarsForAnswer(ctx context.Context, answerID uint) (int64, error) {
	return s.starRepo.CountForAnswer(ctx, answerID)
}

// HasUserStarred returns the user's star under the question, or nil.
func (s *StarService) HasUserStarred(ctx context.Context, userID, questionID uint) (*models.Star, error) {
	return s.starRepo.FindByUserAndQuestion(ctx, userID, questionID)
}
