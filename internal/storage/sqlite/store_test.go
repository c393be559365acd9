package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwulff/neatface-go/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewMemoryStore(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestNewFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.db")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, path)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetSetting(ctx, "fgColor", "fb-red"))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.GetSetting(ctx, "fgColor")
	require.NoError(t, err)
	assert.Equal(t, "fb-red", value)
}

func TestSetAndGetSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetSetting(ctx, "bgColor", "#102030")
	require.NoError(t, err)

	value, err := store.GetSetting(ctx, "bgColor")
	require.NoError(t, err)

	assert.Equal(t, "#102030", value)
}

func TestGetSettingNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetSetting(ctx, "nonexistent")
	assert.True(t, storage.IsNotFound(err))
}

func TestUpdateSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "disableSeconds", "false")
	_ = store.SetSetting(ctx, "disableSeconds", "true")

	value, err := store.GetSetting(ctx, "disableSeconds")
	require.NoError(t, err)

	assert.Equal(t, "true", value)
}

func TestDeleteSetting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "key", "value")

	err := store.DeleteSetting(ctx, "key")
	require.NoError(t, err)

	_, err = store.GetSetting(ctx, "key")
	assert.True(t, storage.IsNotFound(err))
}

func TestListSettings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "fgColor", "fb-red")
	_ = store.SetSetting(ctx, "bgColor", "black")

	settings, err := store.ListSettings(ctx)
	require.NoError(t, err)

	require.Len(t, settings, 2)
	assert.Equal(t, "bgColor", settings[0].Key)
	assert.Equal(t, "black", settings[0].Value)
	assert.Equal(t, "fgColor", settings[1].Key)
	assert.False(t, settings[1].UpdatedAt.IsZero())
}

func TestClearSettings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.SetSetting(ctx, "a", "1")
	_ = store.SetSetting(ctx, "b", "2")

	require.NoError(t, store.ClearSettings(ctx))

	settings, err := store.ListSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestSetSettingStampsUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	before := time.Now()

	require.NoError(t, store.SetSetting(ctx, "disableNeat", "true"))

	settings, err := store.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.WithinDuration(t, before, settings[0].UpdatedAt, time.Minute)
}
