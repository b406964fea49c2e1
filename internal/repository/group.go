package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return err
	}
	cache.InvalidateGroup(ctx, group.Slug)
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("group", id)
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	group, err := cache.CacheAside(ctx, cache.GroupKey(slug), cache.GroupTTL, func() (*models.Group, error) {
		var g models.Group
		if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
			return nil, err
		}
		return &g, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("group", slug)
		}
		return nil, err
	}
	return group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]*models.Group, error) {
	return cache.CacheAside(ctx, cache.GroupListKey(), cache.GroupTTL, func() ([]*models.Group, error) {
		var groups []*models.Group
		err := r.db.WithContext(ctx).Order("title ASC").Find(&groups).Error
		return groups, err
	})
}

func (r *groupRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Group{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) Update(ctx context.Context, group *models.Group) error {
	if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
		return err
	}
	cache.InvalidateGroup(ctx, group.Slug)
	return nil
}

// Delete removes a group after detaching its posts. The posts survive
// with a null group reference.
func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	group, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateGroup(ctx, group.Slug)
	return nil
}
