package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	newRepo := func(taken map[string]bool) *groupRepoStub {
		return &groupRepoStub{
			slugExistsFn: func(_ context.Context, slug string) (bool, error) {
				return taken[slug], nil
			},
			createFn: func(_ context.Context, g *models.Group) error {
				g.ID = 1
				return nil
			},
		}
	}

	t.Run("derives slug from title", func(t *testing.T) {
		svc := NewGroupService(newRepo(nil))
		group, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Jazz Records"})
		require.NoError(t, err)
		assert.Equal(t, "jazz-records", group.Slug)
	})

	t.Run("explicit slug wins over derivation", func(t *testing.T) {
		svc := NewGroupService(newRepo(nil))
		group, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Jazz Records", Slug: "vinyl"})
		require.NoError(t, err)
		assert.Equal(t, "vinyl", group.Slug)
	})

	t.Run("malformed explicit slug is rejected", func(t *testing.T) {
		svc := NewGroupService(newRepo(nil))
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Jazz", Slug: "no spaces!"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		svc := NewGroupService(newRepo(map[string]bool{"jazz-records": true}))
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Jazz Records"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		svc := NewGroupService(newRepo(nil))
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "  "})
		require.Error(t, err)
	})
}
