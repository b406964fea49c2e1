package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow subscribes the user to an author's posts. Following an author
// twice is a no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) (*models.Follow, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author.ID == userID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if err := s.followRepo.Create(ctx, userID, author.ID); err != nil {
		return nil, err
	}
	follows, err := s.followRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	for _, f := range follows {
		if f.AuthorID == author.ID {
			return f, nil
		}
	}
	return &models.Follow{UserID: userID, AuthorID: author.ID}, nil
}

// Unfollow removes the subscription, reporting NOT_FOUND when the user
// was not following the author.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, userID, author.ID)
}

// IsFollowing answers the profile page's "am I subscribed" question.
// Anonymous readers and a user's own profile always answer false.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	if userID == 0 || userID == authorID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}

// ListFollows returns the user's subscriptions, optionally filtered by
// a substring of the followed author's username.
func (s *FollowService) ListFollows(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	return s.followRepo.ListByUser(ctx, userID, search)
}
