package config

import (
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/storage"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func loadConfig(t *testing.T) {
	t.Helper()
	require.NoError(t, utils.LoadConfig(filepath.Join(t.TempDir(), "config.yaml")))
}

func TestNewPhotoStore_Local(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PHOTO_STORAGE", "local")
	t.Setenv("PHOTOS_DIRECTORY", dir)
	loadConfig(t)

	store, err := NewPhotoStore(context.Background())
	require.NoError(t, err)

	local, ok := store.(*storage.LocalStore)
	require.True(t, ok)
	assert.Equal(t, dir, local.Root())
}

func TestNewPhotoStore_S3RequiresBucket(t *testing.T) {
	t.Setenv("PHOTO_STORAGE", "s3")
	loadConfig(t)

	_, err := NewPhotoStore(context.Background())
	assert.Error(t, err)
}

func TestNewPhotoStore_Unknown(t *testing.T) {
	t.Setenv("PHOTO_STORAGE", "ftp")
	loadConfig(t)

	_, err := NewPhotoStore(context.Background())
	assert.ErrorContains(t, err, "ftp")
}
