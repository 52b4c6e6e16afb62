package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsers(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "alice", "alice@example.com", "secret")
	registerUser(t, app, "Alina", "alina@example.com", "secret")
	registerUser(t, app, "bob", "bob@example.com", "secret")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search-users?query=ALI", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var usernames []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&usernames))
	assert.ElementsMatch(t, []string{"alice", "Alina"}, usernames)
}

func TestSearchUsers_NoMatches(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "alice", "alice@example.com", "secret")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search-users?query=zzz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw), "no matches is an empty list, not null")
}

func TestSearchUsers_MissingQuery(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search-users", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, body := readBody(t, resp)
	assert.Equal(t, "query parameter is required", body["error"])
}

func TestGetUserProfile(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/users/%d", userID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, body := readBody(t, resp)
	assert.Equal(t, float64(userID), body["userId"])
	assert.Equal(t, "alice", body["username"])
	assert.Contains(t, body, "profilePicture")

	// Only the public slice of the account is exposed.
	assert.NotContains(t, string(raw), "email")
	assert.NotContains(t, string(raw), "$2a$")
}

func TestGetUserProfile_NotFound(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/999", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetUserProfile_BadID(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProfilePicture(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	req := multipartRequest(t, "/update-profile-picture", map[string]string{
		"userId": fmt.Sprintf("%d", userID),
	}, formFile{field: "profilePicture", name: "new.jpg", content: []byte("jpg-bytes")})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body := readBody(t, resp)
	picture := body["profilePicture"].(string)
	assert.Contains(t, picture, "/uploads/")
	assert.True(t, strings.HasSuffix(picture, ".jpg"), picture)

	// The stored URL is visible on the public profile.
	profResp, err := app.Test(httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/users/%d", userID), nil), -1)
	require.NoError(t, err)
	_, profile := readBody(t, profResp)
	assert.Equal(t, picture, profile["profilePicture"])

	// And the blob itself is served from the static uploads mount.
	path := strings.TrimPrefix(picture, "http://localhost:8480")
	fileResp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, fileResp.StatusCode)
	defer fileResp.Body.Close()
	content, err := io.ReadAll(fileResp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpg-bytes", string(content))
}

func TestUpdateProfilePicture_UnknownUser(t *testing.T) {
	_, app := newTestServer(t)

	req := multipartRequest(t, "/update-profile-picture", map[string]string{
		"userId": "999",
	}, formFile{field: "profilePicture", name: "new.jpg", content: []byte("jpg-bytes")})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfilePicture_NoFile(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	req := multipartRequest(t, "/update-profile-picture", map[string]string{
		"userId": fmt.Sprintf("%d", userID),
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, body := readBody(t, resp)
	assert.Equal(t, "No file uploaded", body["error"])
}
