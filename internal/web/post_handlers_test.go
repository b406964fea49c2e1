package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebPostPublishing(t *testing.T) {
	app, db := newWebApp(t)

	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		resp := doGet(t, app, "/create", "")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login?next=/create", resp.Header.Get("Location"))
	})

	t.Run("publishing redirects to the author profile", func(t *testing.T) {
		name := uniqueName("author")
		cookie := signupWeb(t, app, name)

		resp := doForm(t, app, "/create", url.Values{
			"text": {"My very first entry"},
		}, cookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/profile/"+name, resp.Header.Get("Location"))

		resp = doGet(t, app, "/profile/"+name, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "My very first entry")
	})

	t.Run("post lands on its group page", func(t *testing.T) {
		group := createWebGroup(t, db, "Travel Notes", "travel-notes")
		cookie := signupWeb(t, app, uniqueName("traveler"))

		resp := doForm(t, app, "/create", url.Values{
			"text":  {"Dispatch from the road"},
			"group": {fmt.Sprintf("%d", group.ID)},
		}, cookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)

		resp = doGet(t, app, "/group/travel-notes", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)
		assert.Contains(t, body, "Dispatch from the road")
		assert.Contains(t, body, "Travel Notes")
	})

	t.Run("empty text redisplays the form", func(t *testing.T) {
		cookie := signupWeb(t, app, uniqueName("quiet"))

		resp := doForm(t, app, "/create", url.Values{
			"text": {"   "},
		}, cookie)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "New post")
	})
}

func TestWebTimelinePagination(t *testing.T) {
	app, _ := newWebApp(t)
	cookie := signupWeb(t, app, uniqueName("prolific"))

	for i := 1; i <= 13; i++ {
		resp := doForm(t, app, "/create", url.Values{
			"text": {fmt.Sprintf("timeline entry %02d", i)},
		}, cookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
	}

	t.Run("first page holds ten posts newest first", func(t *testing.T) {
		resp := doGet(t, app, "/", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)

		assert.Equal(t, 10, strings.Count(body, "timeline entry"))
		assert.Contains(t, body, "timeline entry 13")
		assert.NotContains(t, body, "timeline entry 03")
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		resp := doGet(t, app, "/?page=2", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)

		assert.Equal(t, 3, strings.Count(body, "timeline entry"))
		assert.Contains(t, body, "timeline entry 01")
	})

	t.Run("out of range page clamps to the last page", func(t *testing.T) {
		resp := doGet(t, app, "/?page=99", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "timeline entry 01")
	})
}

func TestWebPostDetailAndEditing(t *testing.T) {
	app, _ := newWebApp(t)
	authorName := uniqueName("essayist")
	authorCookie := signupWeb(t, app, authorName)

	resp := doForm(t, app, "/create", url.Values{
		"text": {"The essay draft"},
	}, authorCookie)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// Find the post through the author's profile page link.
	resp = doGet(t, app, "/profile/"+authorName, "")
	body := readBody(t, resp)
	postPath := extractFirstPostPath(t, body)

	t.Run("detail page shows the post", func(t *testing.T) {
		resp := doGet(t, app, postPath, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "The essay draft")
	})

	t.Run("author sees the edit link and can edit", func(t *testing.T) {
		resp := doGet(t, app, postPath, authorCookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), postPath+"/edit")

		resp = doForm(t, app, postPath+"/edit", url.Values{
			"text": {"The essay, revised"},
		}, authorCookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, postPath, resp.Header.Get("Location"))

		resp = doGet(t, app, postPath, "")
		assert.Contains(t, readBody(t, resp), "The essay, revised")
	})

	t.Run("non-author is bounced to the post page", func(t *testing.T) {
		otherCookie := signupWeb(t, app, uniqueName("lurker"))

		resp := doGet(t, app, postPath+"/edit", otherCookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, postPath, resp.Header.Get("Location"))

		resp = doForm(t, app, postPath+"/edit", url.Values{
			"text": {"hijacked"},
		}, otherCookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, postPath, resp.Header.Get("Location"))

		resp = doGet(t, app, postPath, "")
		assert.NotContains(t, readBody(t, resp), "hijacked")
	})

	t.Run("missing post renders the 404 page", func(t *testing.T) {
		resp := doGet(t, app, "/posts/99999", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Page not found")
	})
}

func TestWebComments(t *testing.T) {
	app, _ := newWebApp(t)
	authorCookie := signupWeb(t, app, uniqueName("poster"))

	resp := doForm(t, app, "/create", url.Values{
		"text": {"A commentable post"},
	}, authorCookie)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	profile := resp.Header.Get("Location")
	resp = doGet(t, app, profile, "")
	postPath := extractFirstPostPath(t, readBody(t, resp))

	t.Run("logged-in reader can comment", func(t *testing.T) {
		readerName := uniqueName("reader")
		readerCookie := signupWeb(t, app, readerName)

		resp := doForm(t, app, postPath+"/comment", url.Values{
			"text": {"Loved this one"},
		}, readerCookie)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, postPath, resp.Header.Get("Location"))

		resp = doGet(t, app, postPath, "")
		body := readBody(t, resp)
		assert.Contains(t, body, "Loved this one")
		assert.Contains(t, body, readerName)
	})

	t.Run("anonymous commenter is sent to login", func(t *testing.T) {
		resp := doForm(t, app, postPath+"/comment", url.Values{
			"text": {"drive-by"},
		}, "")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Location"), "/auth/login")
	})

	t.Run("comment on a missing post renders 404", func(t *testing.T) {
		cookie := signupWeb(t, app, uniqueName("ghost"))
		resp := doForm(t, app, "/posts/99999/comment", url.Values{
			"text": {"into the void"},
		}, cookie)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// extractFirstPostPath pulls the first /posts/<id> link out of rendered HTML.
func extractFirstPostPath(t *testing.T, body string) string {
	t.Helper()

	idx := strings.Index(body, `href="/posts/`)
	require.NotEqual(t, -1, idx, "no post link in page")
	rest := body[idx+len(`href="`):]
	end := strings.IndexByte(rest, '"')
	require.NotEqual(t, -1, end)
	path := rest[:end]
	// Strip trailing segments such as /edit.
	parts := strings.Split(path, "/")
	require.GreaterOrEqual(t, len(parts), 3)
	return "/" + parts[1] + "/" + parts[2]
}
