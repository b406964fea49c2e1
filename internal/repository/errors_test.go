package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestPostRepository_CountPropagatesDatabaseErrors(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewPostRepository(gdb)

	dbErr := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).WillReturnError(dbErr)

	_, err := repo.Count(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_ExistsPropagatesDatabaseErrors(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewFollowRepository(gdb)

	dbErr := errors.New("pq: deadlock detected")
	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).WillReturnError(dbErr)

	_, err := repo.Exists(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
