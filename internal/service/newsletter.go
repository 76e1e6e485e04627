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

// NewsletterService records signups. Append-only: duplicates are allowed.
type NewsletterService struct {
	repo repository.INewsletterRepository
	log  *zap.Logger
}

func NewNewsletterService(log *zap.Logger, repo repository.INewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo, log: log}
}

// Signup validates and appends a signup record. Nothing is written when the
// input is rejected.
func (s *NewsletterService) Signup(ctx context.Context, name, email string) (*model.NewsletterSignup, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, apperror.New(apperror.InvalidInput, "name and email are required")
	}

	signup := &model.NewsletterSignup{Name: name, Email: email, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, signup); err != nil {
		return nil, err
	}
	return signup, nil
}
