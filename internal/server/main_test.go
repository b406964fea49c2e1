package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Port:         "0",
		JWTSecret:    "test-secret-key-for-handler-tests!",
		Env:          "test",
		ItemsPerPage: 10,
		PageCacheTTL: 20 * time.Second,
	}
}

func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	require.NoError(t, database.Migrate(db))

	s, err := NewServerWithDeps(testConfig(), db, nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupRoutes(app)
	return app, s
}

// signupUser registers an account through the API and returns its token.
func signupUser(t *testing.T, app *fiber.App, username string) (token string, userID uint) {
	t.Helper()

	body := map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "Sup3rSecret!pass",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// createGroup inserts a group directly, since the API surface is read-only for groups.
func createGroup(t *testing.T, s *Server, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: "Group " + slug, Slug: slug}
	require.NoError(t, s.db.Create(group).Error)
	return group
}

// createPostVia posts through the API and returns the decoded post.
func createPostVia(t *testing.T, app *fiber.App, token, text string, groupID *uint) models.Post {
	t.Helper()
	body := map[string]any{"text": text}
	if groupID != nil {
		body["group"] = *groupID
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/posts", body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	return post
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()%1e9)
}
