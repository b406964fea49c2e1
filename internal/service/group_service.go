package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

const maxGroupTitleLen = 200

type GroupService struct {
	groupRepo repository.GroupRepository
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// CreateGroup registers a community. When no slug is supplied one is
// derived from the title; either way the slug must be unique.
func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxGroupTitleLen {
		return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", maxGroupTitleLen))
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = validation.DeriveGroupSlug(title)
		if slug == "" {
			return nil, models.NewValidationError("Title does not produce a usable slug, supply one explicitly")
		}
	} else if err := validation.ValidateGroupSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	exists, err := s.groupRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError(fmt.Sprintf("Slug %q is already taken", slug))
	}

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *GroupService) GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	return s.groupRepo.Delete(ctx, id)
}
