package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	app, _ := newTestServer(t)
	username := uniqueName("alice")

	t.Run("signup issues a token", func(t *testing.T) {
		token, userID := signupUser(t, app, username)
		assert.NotEmpty(t, token)
		assert.NotZero(t, userID)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		body := map[string]string{
			"username": username,
			"email":    "other@example.com",
			"password": "Sup3rSecret!pass",
		}
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", body, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		body := map[string]string{
			"username": uniqueName("bob"),
			"email":    "bob@example.com",
			"password": "short",
		}
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		body := map[string]string{"username": username, "password": "Sup3rSecret!pass"}
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", body, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &out)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		body := map[string]string{"username": username, "password": "WrongPassword1!"}
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	app, _ := newTestServer(t)
	token, _ := signupUser(t, app, uniqueName("carol"))

	t.Run("valid token refreshes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/refresh", nil, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &out)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/refresh", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/refresh", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
