package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuiter/internal/identifier"
	"tuiter/internal/repositories"
)

func TestNewApp(t *testing.T) {
	app := newApp(repositories.NewMockUserRepository(), repositories.NewMockTweetRepository(), nil)

	t.Run("Home", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Mundo", body["Hola"])
	})

	t.Run("Health", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("GeneracionID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/generacion-id", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var id string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
		assert.Len(t, id, identifier.Length)
	})

	t.Run("UsersEmpty", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/usuarios", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestBuildRepositoriesMemory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	viperDefaults()

	userRepo, tweetRepo, err := buildRepositories()
	require.NoError(t, err)
	assert.NotNil(t, userRepo)
	assert.NotNil(t, tweetRepo)
}

func TestBuildRepositoriesUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")
	viperDefaults()

	_, _, err := buildRepositories()
	assert.Error(t, err)
}
