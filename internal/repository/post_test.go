package repository

import (
	"context"
	"testing"
	"time"

	"folio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, owner))

	now := time.Now()
	for i, content := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, posts.Create(ctx, &models.Post{
			Content:   content,
			Media:     models.MediaURLs{},
			UserID:    owner.ID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := posts.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "newest", got[0].Content)
	assert.Equal(t, "middle", got[1].Content)
	assert.Equal(t, "oldest", got[2].Content)
	assert.Equal(t, "alice", got[0].User.Username, "owner should be preloaded")
}

func TestPostRepository_CreateForUnknownUser(t *testing.T) {
	posts := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	// The owner is a plain reference; no existence check is performed.
	post := &models.Post{Content: "orphan", UserID: 424242}
	require.NoError(t, posts.Create(ctx, post))
	assert.NotZero(t, post.ID)

	got, err := posts.ListByUser(ctx, 424242)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "orphan", got[0].Content)
}

func TestPostRepository_MediaRoundTrip(t *testing.T) {
	posts := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	media := models.MediaURLs{
		"http://localhost:8480/uploads/a.png",
		"http://localhost:8480/uploads/b.jpg",
	}
	require.NoError(t, posts.Create(ctx, &models.Post{Content: "two files", Media: media, UserID: 1}))

	got, err := posts.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, media, got[0].Media, "media order must be preserved")
}

func TestPostRepository_Delete(t *testing.T) {
	posts := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &models.Post{Content: "bye", UserID: 1}
	require.NoError(t, posts.Create(ctx, post))

	require.NoError(t, posts.Delete(ctx, post.ID))
	got, err := posts.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again (or a never-existing id) is still a success.
	require.NoError(t, posts.Delete(ctx, post.ID))
	require.NoError(t, posts.Delete(ctx, 999))
}
