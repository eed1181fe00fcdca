package localdisk_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/storage/localdisk"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *localdisk.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := localdisk.NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndOpen(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newStore(t)

	// Act
	written, err := store.Save(ctx, "abc.jpg", strings.NewReader("hello"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(5), written)

	f, modTime, err := store.Open(ctx, "abc.jpg")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, modTime.IsZero())

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestStore_Open_SupportsSeeking(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newStore(t)
	_, err := store.Save(ctx, "clip.mp4", strings.NewReader("0123456789"))
	require.NoError(t, err)

	f, _, err := store.Open(ctx, "clip.mp4")
	require.NoError(t, err)
	defer f.Close()

	// Act
	_, err = f.Seek(5, io.SeekStart)

	// Assert
	require.NoError(t, err)
	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "56789", string(rest))
}

func TestStore_Open_Missing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newStore(t)

	// Act
	f, _, err := store.Open(ctx, "ghost.jpg")

	// Assert
	assert.Nil(t, f)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_Delete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newStore(t)
	_, err := store.Save(ctx, "abc.jpg", strings.NewReader("hello"))
	require.NoError(t, err)

	// Act
	removed, err := store.Delete(ctx, "abc.jpg")

	// Assert
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Delete(ctx, "abc.jpg")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_RejectsEscapingNames(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newStore(t)

	for _, name := range []string{"", "../secret", "a/b.jpg", `a\b.jpg`} {
		// Act
		_, err := store.Save(ctx, name, strings.NewReader("x"))

		// Assert
		assert.Error(t, err, "name %q should be rejected", name)
	}
}
