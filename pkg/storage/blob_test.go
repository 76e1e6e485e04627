package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"outreach/internal/config"
)

func testStore(t *testing.T) *BlobStore {
	t.Helper()
	cfg := config.StorageConfig{
		RootDir:    t.TempDir(),
		Bucket:     "outreach-media",
		PublicHost: "cdn.example.org",
	}
	return NewBlobStore(cfg, zap.NewNop())
}

func TestPutWritesFileAndReturnsPublicURL(t *testing.T) {
	store := testStore(t)

	url, err := store.Put("uploads/ev-1/123-poster.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/outreach-media/uploads/ev-1/123-poster.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.BucketDir(), "uploads", "ev-1", "123-poster.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestPutOverwritesExistingObject(t *testing.T) {
	store := testStore(t)

	_, err := store.Put("a/b.txt", "text/plain", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = store.Put("a/b.txt", "text/plain", strings.NewReader("two"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.BucketDir(), "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestPutRejectsPathTraversal(t *testing.T) {
	store := testStore(t)

	_, err := store.Put("../escape.txt", "text/plain", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Put("", "text/plain", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestConfigured(t *testing.T) {
	assert.True(t, testStore(t).Configured())

	unconfigured := NewBlobStore(config.StorageConfig{RootDir: "/tmp", Bucket: "b"}, zap.NewNop())
	assert.False(t, unconfigured.Configured(), "missing public host disables the store")
}

func TestObjectPathShape(t *testing.T) {
	p := ObjectPath("uploads", "ev-1", "my poster.jpg")
	assert.True(t, strings.HasPrefix(p, "uploads/ev-1/"))
	assert.True(t, strings.HasSuffix(p, "-my poster.jpg"))

	// The filename component is stripped of any directory part.
	p = ObjectPath("uploads", "ev-1", "/etc/passwd")
	assert.NotContains(t, p, "etc")
	assert.True(t, strings.HasSuffix(p, "-passwd"))
}
