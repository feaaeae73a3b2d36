package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// LikeService maintains the like ledger and its invariants: no self-likes,
// and un-liking requires an existing edge.
type LikeService struct {
	likeRepo    repository.LikeRepository
	messageRepo repository.MessageRepository
}

// NewLikeService creates a new like service
func NewLikeService(likeRepo repository.LikeRepository, messageRepo repository.MessageRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, messageRepo: messageRepo}
}

// Like records that the user liked the message. Liking your own message is
// rejected; liking a message twice is a no-op.
func (s *LikeService) Like(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID == userID {
		return models.NewSelfLikeError()
	}
	return s.likeRepo.Create(ctx, userID, messageID)
}

// Unlike removes the like edge. Fails with SelfLike for own messages and
// NotLiked when no edge exists.
func (s *LikeService) Unlike(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID == userID {
		return models.NewSelfLikeError()
	}
	liked, err := s.likeRepo.Exists(ctx, userID, messageID)
	if err != nil {
		return err
	}
	if !liked {
		return models.NewNotLikedError()
	}
	return s.likeRepo.Delete(ctx, userID, messageID)
}

// LikedMessages returns the messages the user has liked, newest first,
// annotated for the viewing user.
func (s *LikeService) LikedMessages(ctx context.Context, userID, viewerID uint) ([]*models.Message, error) {
	return s.messageRepo.LikedBy(ctx, userID, TimelineLimit, viewerID)
}
