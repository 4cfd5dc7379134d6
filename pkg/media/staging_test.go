package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1/photo.webp", "image/webp", strings.NewReader("binary-data")))

	r, err := store.Open(ctx, "sess-1/photo.webp")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	r.Close()
	assert.Equal(t, "binary-data", string(data))

	require.NoError(t, store.Remove(ctx, "sess-1/photo.webp"))
	_, err = store.Open(ctx, "sess-1/photo.webp")
	assert.Error(t, err)
}

func TestLocalStoreRemoveMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "sess-1/never-existed.webp"))
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "../outside.txt", "text/plain", strings.NewReader("x")))
	_, err = store.Open(ctx, "/etc/passwd")
	assert.Error(t, err)
}
