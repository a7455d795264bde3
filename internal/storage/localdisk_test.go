package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDisk_PutDelete(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewLocalDisk(dir, "http://localhost:8080/")
	require.NoError(t, err)

	obj, err := store.Put(ctx, "gallery/abc.jpg", strings.NewReader("fake-jpeg-bytes"), PutOptions{
		Size:        15,
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/gallery/abc.jpg", obj.URL)
	assert.Equal(t, "gallery/abc.jpg", obj.Handle)

	data, err := os.ReadFile(filepath.Join(dir, "gallery", "abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))

	require.NoError(t, store.Delete(ctx, obj.Handle))
	_, err = os.Stat(filepath.Join(dir, "gallery", "abc.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDisk_PutDuplicateKey(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewLocalDisk(dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Put(ctx, "a.png", strings.NewReader("one"), PutOptions{})
	require.NoError(t, err)

	_, err = store.Put(ctx, "a.png", strings.NewReader("two"), PutOptions{})
	assert.Error(t, err)
}

func TestLocalDisk_DeleteMissingFile(t *testing.T) {
	store, err := NewLocalDisk(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	// Out-of-band removal must not break metadata cleanup upstream.
	assert.NoError(t, store.Delete(context.Background(), "gone.jpg"))
}

func TestLocalDisk_RejectsTraversal(t *testing.T) {
	store, err := NewLocalDisk(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../escape.jpg", strings.NewReader("x"), PutOptions{})
	assert.Error(t, err)

	err = store.Delete(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestNewLocalDisk_RequiresDir(t *testing.T) {
	_, err := NewLocalDisk("", "http://localhost:8080")
	assert.Error(t, err)
}
