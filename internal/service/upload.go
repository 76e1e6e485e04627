package service

import (
	"io"
	"path"

	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/pkg/storage"
)

// Uploader abstracts the public blob store.
type Uploader interface {
	Configured() bool
	Put(objectPath, contentType string, r io.Reader) (string, error)
}

// UploadService computes deterministic object paths and stores blobs.
type UploadService struct {
	blobs Uploader
	log   *zap.Logger
}

func NewUploadService(log *zap.Logger, blobs Uploader) *UploadService {
	return &UploadService{blobs: blobs, log: log}
}

// Store writes an upload addressed by the caller-supplied identifiers and
// returns its public URL plus the object path. At least one identifier is
// required so paths stay unambiguous.
func (s *UploadService) Store(eventID, taskID, filename, contentType string, r io.Reader) (url, objectPath string, err error) {
	if !s.blobs.Configured() {
		return "", "", apperror.New(apperror.BackendUnavailable, "storage is not configured")
	}

	id := eventID
	if taskID != "" {
		id = path.Join(id, taskID)
	}
	if id == "" {
		return "", "", apperror.New(apperror.InvalidInput, "eventId or taskId is required")
	}
	if filename == "" {
		return "", "", apperror.New(apperror.InvalidInput, "filename is required")
	}

	objectPath = storage.ObjectPath("uploads", id, filename)
	url, err = s.blobs.Put(objectPath, contentType, r)
	if err != nil {
		return "", "", apperror.Wrap(apperror.UpstreamFailure, "failed to store upload", err)
	}
	return url, objectPath, nil
}
