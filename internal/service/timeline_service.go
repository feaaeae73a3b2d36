package service

import (
	"context"

	"warbler/internal/middleware"
	"warbler/internal/models"
	"warbler/internal/repository"
)

// TimelineLimit caps every assembled feed.
const TimelineLimit = 100

// TimelineService assembles the bounded, ordered message feeds.
type TimelineService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewTimelineService creates a new timeline service
func NewTimelineService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *TimelineService {
	return &TimelineService{messageRepo: messageRepo, userRepo: userRepo}
}

// HomeTimeline returns the most recent messages from the user and the
// accounts they follow, newest first, capped at TimelineLimit. Anonymous
// viewers (userID == 0) receive an empty feed.
func (s *TimelineService) HomeTimeline(ctx context.Context, userID uint) ([]*models.Message, error) {
	if userID == 0 {
		middleware.TimelineQueries.WithLabelValues("anonymous").Inc()
		return []*models.Message{}, nil
	}
	middleware.TimelineQueries.WithLabelValues("authenticated").Inc()
	return s.messageRepo.HomeTimeline(ctx, userID, TimelineLimit)
}

// UserMessages returns a single user's messages with the same ordering and
// cap as the home timeline (the profile view).
func (s *TimelineService) UserMessages(ctx context.Context, userID, viewerID uint) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByUserID(ctx, userID, TimelineLimit, viewerID)
}
