package server

import (
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAPI(t *testing.T) {
	app, _ := newTestServer(t)
	readerToken, _ := signupUser(t, app, uniqueName("reader"))
	authorName := uniqueName("author")
	_, authorID := signupUser(t, app, authorName)

	t.Run("requires authentication", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/follow", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("follow an author", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/follow",
			map[string]string{"following": authorName}, readerToken)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var follow models.Follow
		decodeBody(t, resp, &follow)
		assert.Equal(t, authorID, follow.AuthorID)
	})

	t.Run("following again stays a single subscription", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/follow",
			map[string]string{"following": authorName}, readerToken)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/v1/follow", nil, readerToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var follows []models.Follow
		decodeBody(t, resp, &follows)
		assert.Len(t, follows, 1)
	})

	t.Run("search filters by username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/follow?search="+authorName[:6], nil, readerToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var follows []models.Follow
		decodeBody(t, resp, &follows)
		assert.Len(t, follows, 1)

		resp = doJSON(t, app, http.MethodGet, "/api/v1/follow?search=zzz-nobody", nil, readerToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &follows)
		assert.Empty(t, follows)
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		authorToken, _ := func() (string, uint) {
			body := map[string]string{"username": authorName, "password": "Sup3rSecret!pass"}
			resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", body, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var out struct {
				Token string `json:"token"`
			}
			decodeBody(t, resp, &out)
			return out.Token, 0
		}()

		resp := doJSON(t, app, http.MethodPost, "/api/v1/follow",
			map[string]string{"following": authorName}, authorToken)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("following an unknown user is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/follow",
			map[string]string{"following": "no-such-user"}, readerToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unfollow", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/v1/follow/"+authorName, nil, readerToken)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("unfollow when not following is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/v1/follow/"+authorName, nil, readerToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGroupsAPI(t *testing.T) {
	app, s := newTestServer(t)
	group := createGroup(t, s, uniqueName("records"))

	t.Run("list groups", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/groups", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var groups []models.Group
		decodeBody(t, resp, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, group.Slug, groups[0].Slug)
	})

	t.Run("get group by id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/groups/"+itoa(group.ID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Group
		decodeBody(t, resp, &got)
		assert.Equal(t, group.Title, got.Title)
	})

	t.Run("missing group is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/groups/4242", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
