package storage

import (
	"context"
	"path/filepath"
	"testing"

	"folio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Local(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.StorageLocal,
		UploadDir:      filepath.Join(t.TempDir(), "uploads"),
		PublicBaseURL:  "http://localhost:8480",
	}

	store, syncer, err := Build(context.Background(), cfg, &fakeQueue{})
	require.NoError(t, err)
	assert.Equal(t, "local", store.Name())
	assert.Nil(t, syncer, "local disk needs no sync tasks")
}

func TestBuild_Mirror(t *testing.T) {
	cfg := &config.Config{
		StorageBackend:  config.StorageMirror,
		UploadDir:       filepath.Join(t.TempDir(), "uploads"),
		PublicBaseURL:   "http://localhost:8480",
		MirrorRemoteURL: "https://git.example.com/media.git",
	}

	store, syncer, err := Build(context.Background(), cfg, &fakeQueue{})
	require.NoError(t, err)
	assert.Equal(t, "mirror", store.Name())
	require.NotNil(t, syncer, "the mirror backend carries pull and push tasks")
}

func TestBuild_Unknown(t *testing.T) {
	_, _, err := Build(context.Background(), &config.Config{StorageBackend: "ftp"}, &fakeQueue{})
	assert.ErrorContains(t, err, "unknown storage backend")
}
