package service

import (
	"context"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/repository"
	"outreach/pkg/storage"
	"outreach/pkg/util"
)

// File type buckets inside an event's content block.
const (
	FileTypePhoto    = "photos"
	FileTypeVideo    = "videos"
	FileTypeDocument = "documents"
)

// EventService manages event documents and their nested content block.
type EventService struct {
	repo  repository.IEventRepository
	blobs Uploader
	log   *zap.Logger
}

func NewEventService(log *zap.Logger, repo repository.IEventRepository, blobs Uploader) *EventService {
	return &EventService{repo: repo, blobs: blobs, log: log}
}

// GetContent returns the content block of an event, empty if none was ever
// written.
func (s *EventService) GetContent(ctx context.Context, id string) (*model.EventContent, error) {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return nil, apperror.Wrap(apperror.InvalidInput, "invalid event id", err)
	}

	event, err := s.repo.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if event.Content == nil {
		return &model.EventContent{}, nil
	}
	return event.Content, nil
}

// UpdateContent merges the patch into the event's content block. The store
// only merges shallowly at the top level, so the whole block is reconstructed
// in memory and written back as one field.
func (s *EventService) UpdateContent(ctx context.Context, id string, patch model.EventContentPatch) error {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return apperror.Wrap(apperror.InvalidInput, "invalid event id", err)
	}

	event, err := s.repo.FindByID(ctx, objID)
	if err != nil {
		return err
	}

	merged := mergeContent(event.Content, patch)
	return s.repo.UpdateFields(ctx, objID, bson.M{"content": merged})
}

// AttachUpload stores a file for the event, classifies it by MIME prefix and
// appends its URL to the matching content sub-array.
func (s *EventService) AttachUpload(ctx context.Context, id, filename, contentType string, r io.Reader) (url, fileType string, err error) {
	if !s.blobs.Configured() {
		return "", "", apperror.New(apperror.BackendUnavailable, "storage is not configured")
	}

	objID, err := util.ParseObjectID(id)
	if err != nil {
		return "", "", apperror.Wrap(apperror.InvalidInput, "invalid event id", err)
	}

	event, err := s.repo.FindByID(ctx, objID)
	if err != nil {
		return "", "", err
	}

	objectPath := storage.ObjectPath("events", id, filename)
	url, err = s.blobs.Put(objectPath, contentType, r)
	if err != nil {
		return "", "", apperror.Wrap(apperror.UpstreamFailure, "failed to store upload", err)
	}

	fileType = ClassifyFileType(contentType)
	content := mergeContent(event.Content, model.EventContentPatch{})
	switch fileType {
	case FileTypePhoto:
		content.Photos = append(content.Photos, url)
	case FileTypeVideo:
		content.Videos = append(content.Videos, url)
	default:
		content.Documents = append(content.Documents, url)
	}
	content.UpdatedAt = time.Now()

	if err := s.repo.UpdateFields(ctx, objID, bson.M{"content": content}); err != nil {
		return "", "", err
	}
	return url, fileType, nil
}

// ListPublic returns approved events in their public shape. Non-public events
// are included only when includePrivate is set; non-approved events never
// appear.
func (s *EventService) ListPublic(ctx context.Context, includePrivate bool) ([]model.PublicEvent, error) {
	events, err := s.repo.FindByStatus(ctx, model.EventStatusApproved)
	if err != nil {
		return nil, err
	}

	out := make([]model.PublicEvent, 0, len(events))
	for _, e := range events {
		if !e.IsPublicEvent && !includePrivate {
			continue
		}
		out = append(out, e.ToPublic())
	}
	return out, nil
}

// mergeContent rebuilds the full content block: existing sub-arrays survive
// unless the patch replaces them, createdAt keeps its first value and
// updatedAt is stamped to now.
func mergeContent(existing *model.EventContent, patch model.EventContentPatch) *model.EventContent {
	now := time.Now()

	merged := &model.EventContent{CreatedAt: now, UpdatedAt: now}
	if existing != nil {
		merged.Photos = existing.Photos
		merged.Videos = existing.Videos
		merged.Documents = existing.Documents
		if !existing.CreatedAt.IsZero() {
			merged.CreatedAt = existing.CreatedAt
		}
	}

	if patch.Photos != nil {
		merged.Photos = patch.Photos
	}
	if patch.Videos != nil {
		merged.Videos = patch.Videos
	}
	if patch.Documents != nil {
		merged.Documents = patch.Documents
	}
	return merged
}

// ClassifyFileType maps a client-declared MIME type to a content sub-array.
// Anything that is not an image or a video lands in documents.
func ClassifyFileType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return FileTypePhoto
	case strings.HasPrefix(contentType, "video/"):
		return FileTypeVideo
	default:
		return FileTypeDocument
	}
}
