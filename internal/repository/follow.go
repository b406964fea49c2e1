package repository

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Create(ctx context.Context, userID, authorID uint) error
	Delete(ctx context.Context, userID, authorID uint) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create records a follow. Repeating an existing follow is a no-op
// rather than an error, so concurrent requests cannot race into a
// duplicate-key failure.
func (r *followRepository) Create(ctx context.Context, userID, authorID uint) error {
	follow := models.Follow{UserID: userID, AuthorID: authorID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
	if err == nil {
		observability.FollowActions.WithLabelValues("follow", "ok").Inc()
	}
	return err
}

// Delete removes a follow. Unfollowing an author the user does not
// follow reports NOT_FOUND.
func (r *followRepository) Delete(ctx context.Context, userID, authorID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("follow", authorID)
	}
	observability.FollowActions.WithLabelValues("unfollow", "ok").Inc()
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser returns the user's follows, optionally filtered by a
// case-insensitive substring match on the followed author's username.
func (r *followRepository) ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	var follows []*models.Follow
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Author").
		Where("follows.user_id = ?", userID)
	if search != "" {
		q = q.Joins("JOIN users ON users.id = follows.author_id").
			Where("LOWER(users.username) LIKE LOWER(?)", "%"+search+"%")
	}
	err := q.Order("follows.created_at DESC, follows.id DESC").Find(&follows).Error
	return follows, err
}
