package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Integration(t *testing.T) {
	repo := NewFollowRepository(testDB)
	ctx := context.Background()

	reader := createTestUser(t)
	author := createTestUser(t)

	t.Run("Create and Exists", func(t *testing.T) {
		exists, err := repo.Exists(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.Create(ctx, reader.ID, author.ID))

		exists, err = repo.Exists(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Create is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, reader.ID, author.ID))

		var count int64
		testDB.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, author.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("follow is directional", func(t *testing.T) {
		exists, err := repo.Exists(ctx, author.ID, reader.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListByUser with search", func(t *testing.T) {
		follows, err := repo.ListByUser(ctx, reader.ID, "")
		require.NoError(t, err)
		require.Len(t, follows, 1)
		assert.Equal(t, author.ID, follows[0].AuthorID)
		assert.Equal(t, author.Username, follows[0].Author.Username)

		follows, err = repo.ListByUser(ctx, reader.ID, author.Username[:5])
		require.NoError(t, err)
		assert.Len(t, follows, 1)

		follows, err = repo.ListByUser(ctx, reader.ID, "no-such-author")
		require.NoError(t, err)
		assert.Empty(t, follows)
	})

	t.Run("Delete removes the follow", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, reader.ID, author.ID))

		exists, err := repo.Exists(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete when not following reports NOT_FOUND", func(t *testing.T) {
		err := repo.Delete(ctx, reader.ID, author.ID)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("self follow fails the check constraint", func(t *testing.T) {
		err := testDB.Create(&models.Follow{UserID: reader.ID, AuthorID: reader.ID}).Error
		require.Error(t, err)

		var count int64
		require.NoError(t, testDB.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, reader.ID).
			Count(&count).Error)
		assert.Zero(t, count)
	})
}
