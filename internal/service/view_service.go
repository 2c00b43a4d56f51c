package service

import (
	"context"
	"time"

	"github.com/daksh1821/Ask-Away/internal/middleware"
	"github.com/daksh1821/Ask-Away/internal/models"
	"github.com/daksh1821/Ask-Away/internal/observability"
	"github.com/daksh1821/Ask-Away/internal/repository"
)

// duplicateWindow is how long a repeat view from the same identity is
// suppressed.
const duplicateWindow = time.Hour

// TrackResult reports whether a view was recorded and the question's view
// total after the attempt.
type TrackResult struct {
	Accepted   bool `json:"accepted"`
	TotalViews int  `json:"total_views"`
}

// ViewService records question views with duplicate suppression. Tracking is
// best effort: a failure here must never break the read path that triggered
// it, so errors are logged and reported as a rejected view rather than
// propagated.
type ViewService struct {
	viewRepo repository.ViewRepository
}

func NewViewService(viewRepo repository.ViewRepository) *ViewService {
	return &ViewService{viewRepo: viewRepo}
}

// TrackView records a view of questionID. Identity for deduplication is the
// authenticated user when present, otherwise the client IP; a repeat view
// from the same identity within the hour is suppressed. userID of 0 means
// anonymous.
func (s *ViewService) TrackView(ctx context.Context, questionID, userID uint, ipAddress, userAgent string) TrackResult {
	since := time.Now().Add(-duplicateWindow)

	var (
		recent bool
		err    error
	)
	switch {
	case userID != 0:
		recent, err = s.viewRepo.HasRecentByUser(ctx, questionID, userID, since)
	case ipAddress != "":
		recent, err = s.viewRepo.HasRecentByIP(ctx, questionID, ipAddress, since)
	}
	if err != nil {
		middleware.Logger.WarnContext(ctx, "view dedup check failed", "question_id", questionID, "error", err)
		observability.ViewsTracked.WithLabelValues("failed").Inc()
		return s.resultWithTotal(ctx, questionID, false)
	}
	if recent {
		observability.ViewsTracked.WithLabelValues("duplicate").Inc()
		return s.resultWithTotal(ctx, questionID, false)
	}

	view := &models.QuestionView{
		QuestionID: questionID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	if userID != 0 {
		uid := userID
		view.UserID = &uid
	}

	if err := s.viewRepo.Track(ctx, view); err != nil {
		middleware.Logger.WarnContext(ctx, "view tracking failed", "question_id", questionID, "error", err)
		observability.ViewsTracked.WithLabelValues("failed").Inc()
		return s.resultWithTotal(ctx, questionID, false)
	}

	observability.ViewsTracked.WithLabelValues("accepted").Inc()
	return s.resultWithTotal(ctx, questionID, true)
}

// ViewsCount returns the question's denormalized view total.
func (s *ViewService) ViewsCount(ctx context.Context, questionID uint) (int, error) {
	return s.viewRepo.ViewsCount(ctx, questionID)
}

func (s *ViewService) resultWithTotal(ctx context.Context, questionID uint, accepted bool) TrackResult {
	total, err := s.viewRepo.ViewsCount(ctx, questionID)
	if err != nil {
		total = 0
	}
	return TrackResult{Accepted: accepted, TotalViews: total}
}
