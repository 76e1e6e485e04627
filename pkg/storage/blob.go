// Package storage implements the public blob store: bytes written under a
// bucket directory and addressed by a stable public URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"outreach/internal/config"
	"outreach/pkg/timer"
)

// BlobStore writes objects under <root>/<bucket>/<path> and serves them back
// at https://<public-host>/<bucket>/<path>. Objects are world readable; there
// is no private tier.
type BlobStore struct {
	cfg config.StorageConfig
	log *zap.Logger
}

func NewBlobStore(cfg config.StorageConfig, log *zap.Logger) *BlobStore {
	return &BlobStore{cfg: cfg, log: log}
}

// Configured reports whether the store can accept uploads.
func (s *BlobStore) Configured() bool {
	return s.cfg.Configured()
}

// BucketDir returns the on-disk directory backing the bucket, for static
// serving.
func (s *BlobStore) BucketDir() string {
	return filepath.Join(s.cfg.RootDir, s.cfg.Bucket)
}

// Put writes the object and returns its public URL. objectPath uses forward
// slashes regardless of platform.
func (s *BlobStore) Put(objectPath, contentType string, r io.Reader) (string, error) {
	defer timer.Track("BlobStore.Put")()

	if objectPath == "" || strings.Contains(objectPath, "..") {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}

	full := filepath.Join(s.BucketDir(), filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	s.log.Info("stored object",
		zap.String("path", objectPath),
		zap.String("contentType", contentType),
		zap.Int64("bytes", n))

	return s.PublicURL(objectPath), nil
}

// PublicURL returns the stable unauthenticated URL for an object path.
func (s *BlobStore) PublicURL(objectPath string) string {
	return "https://" + s.cfg.PublicHost + "/" + path.Join(s.cfg.Bucket, objectPath)
}

// ObjectPath builds a collision-free path from caller identifiers, a
// millisecond timestamp and the original filename.
func ObjectPath(prefix, id, filename string) string {
	name := filepath.Base(filename)
	return path.Join(prefix, id, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name))
}
