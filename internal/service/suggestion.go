package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/repository"
)

// SuggestionService manages the suggestion inbox.
type SuggestionService struct {
	repo repository.ISuggestionRepository
	log  *zap.Logger
}

func NewSuggestionService(log *zap.Logger, repo repository.ISuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo, log: log}
}

// Create stores a suggestion. The description must be non-empty after
// trimming; status defaults to New.
func (s *SuggestionService) Create(ctx context.Context, description, category, page string) (*model.Suggestion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperror.New(apperror.InvalidInput, "description is required")
	}

	now := time.Now()
	suggestion := &model.Suggestion{
		Description: description,
		Category:    strings.TrimSpace(category),
		Page:        strings.TrimSpace(page),
		Status:      model.SuggestionStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, suggestion); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to create suggestion", err)
	}
	return suggestion, nil
}

// List returns all suggestions, newest first.
func (s *SuggestionService) List(ctx context.Context) ([]*model.Suggestion, error) {
	return s.repo.FindAllDesc(ctx)
}
