package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/repository"
)

// ActionService tracks per-person action entries with monotonic indices.
type ActionService struct {
	repo repository.IActionRepository
	log  *zap.Logger
}

func NewActionService(log *zap.Logger, repo repository.IActionRepository) *ActionService {
	return &ActionService{repo: repo, log: log}
}

// Record appends an entry for the (personId, action) pair. The index comes
// from an atomic counter increment, so two concurrent submissions for the
// same pair always receive distinct consecutive values.
func (s *ActionService) Record(ctx context.Context, personID, action string, metadata map[string]any) (*model.ActionEntry, error) {
	personID = strings.TrimSpace(personID)
	action = strings.TrimSpace(action)
	if personID == "" || action == "" {
		return nil, apperror.New(apperror.InvalidInput, "personId and action are required")
	}

	index, err := s.repo.NextIndex(ctx, personID, action)
	if err != nil {
		return nil, err
	}

	entry := &model.ActionEntry{
		PersonID: personID,
		Action:   action,
		Index:    index,
		Metadata: metadata,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns entries matching the optional filters, newest first.
func (s *ActionService) List(ctx context.Context, personID, action string) ([]*model.ActionEntry, error) {
	return s.repo.Find(ctx, personID, action)
}
