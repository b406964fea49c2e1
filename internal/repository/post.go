// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	ListFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
	CountByGroup(ctx context.Context, groupID uint) (int64, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	CountFeed(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds the comment count subquery so listings carry it
// without a second round trip.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count")
}

// applyOrder sorts newest first with id as a tiebreak so pagination is
// stable when posts share a pub_date.
func (r *postRepository) applyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("posts.pub_date DESC, posts.id DESC")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyOrder(r.applyPostDetails(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Group").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyOrder(r.applyPostDetails(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Group").
		Where("posts.group_id = ?", groupID).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyOrder(r.applyPostDetails(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Group").
		Where("posts.author_id = ?", authorID).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListFeed returns posts by authors the given user follows.
func (r *postRepository) ListFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyOrder(r.applyPostDetails(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Group").
		Where("posts.author_id IN (?)",
			r.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) CountFeed(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("author_id IN (?)",
			r.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}

// Update persists edits to the mutable columns only. The publication
// date and author never change after creation.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("text", "group_id", "image_url").
		Updates(map[string]any{
			"text":      post.Text,
			"group_id":  post.GroupID,
			"image_url": post.ImageURL,
		}).Error
}

// Delete removes a post together with its comments in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
