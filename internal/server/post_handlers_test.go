package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_WithMedia(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	req := multipartRequest(t, "/create-post", map[string]string{
		"userId":  fmt.Sprintf("%d", userID),
		"content": "two attachments",
	},
		formFile{field: "media", name: "a.png", content: []byte("first")},
		formFile{field: "media", name: "b.jpg", content: []byte("second")},
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, body := readBody(t, resp)
	urls := body["imageUrls"].([]any)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasSuffix(urls[0].(string), ".png"), "order of attachments is preserved")
	assert.True(t, strings.HasSuffix(urls[1].(string), ".jpg"))

	post := body["post"].(map[string]any)
	assert.Equal(t, "two attachments", post["content"])
	media := post["media"].([]any)
	assert.Equal(t, urls, media, "the post references exactly the stored URLs")
}

func TestCreatePost_TextOnly(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/create-post", fiber.Map{
		"userId":  fmt.Sprintf("%d", userID),
		"content": "hello world",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreatePost_Empty(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/create-post", fiber.Map{
		"userId":  fmt.Sprintf("%d", userID),
		"content": "",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreatePost_TooManyFiles(t *testing.T) {
	_, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	files := make([]formFile, 11)
	for i := range files {
		files[i] = formFile{field: "media", name: fmt.Sprintf("f%d.png", i), content: []byte("x")}
	}

	req := multipartRequest(t, "/create-post", map[string]string{
		"userId":  fmt.Sprintf("%d", userID),
		"content": "too many",
	}, files...)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, body := readBody(t, resp)
	assert.Equal(t, "Too many files (max 10)", body["error"])
}

func TestCreatePost_OversizeFile(t *testing.T) {
	s, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")
	s.config.MaxUploadSizeMB = 1

	req := multipartRequest(t, "/create-post", map[string]string{
		"userId":  fmt.Sprintf("%d", userID),
		"content": "big file",
	}, formFile{field: "media", name: "big.png", content: bytes.Repeat([]byte("x"), 1024*1024+1)})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, body := readBody(t, resp)
	assert.Contains(t, body["error"], "exceeds the 1MB limit")
}

func TestCreatePost_UnknownUser(t *testing.T) {
	_, app := newTestServer(t)

	// Post ownership is a plain reference; no account lookup happens.
	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/create-post", fiber.Map{
		"userId":  "424242",
		"content": "orphan post",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestGetUserPosts_NewestFirst(t *testing.T) {
	s, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	now := time.Now()
	for i, content := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, s.postRepo.Create(context.Background(), &models.Post{
			Content:   content,
			UserID:    userID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/user-posts/%d", userID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var posts []PostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 3)

	assert.Equal(t, "newest", posts[0].Content)
	assert.Equal(t, "middle", posts[1].Content)
	assert.Equal(t, "oldest", posts[2].Content)

	// Owner fields are joined into every entry.
	for _, p := range posts {
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, "alice", p.Username)
	}
}

func TestGetUserPosts_Empty(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/user-posts/999", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var posts []PostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	assert.Empty(t, posts)
}

func TestDeletePost(t *testing.T) {
	s, app := newTestServer(t)
	userID := registerUser(t, app, "alice", "alice@example.com", "secret")

	post := &models.Post{Content: "bye", UserID: userID}
	require.NoError(t, s.postRepo.Create(context.Background(), post))

	del := func() {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete,
			fmt.Sprintf("/delete-post/%d", post.ID), nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		_, body := readBody(t, resp)
		assert.Equal(t, "Post deleted", body["message"])
	}

	del()

	listResp, err := app.Test(httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/user-posts/%d", userID), nil), -1)
	require.NoError(t, err)
	defer listResp.Body.Close()
	var posts []PostResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&posts))
	assert.Empty(t, posts)

	// Deleting the same post again still succeeds.
	del()
}

func TestDeletePost_BadID(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/delete-post/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
