package service

import (
	"context"

	"go.uber.org/zap"

	"outreach/internal/model"
	"outreach/internal/repository"
	"outreach/pkg/timer"
)

// StatsService aggregates the dashboard counters. Each source is fetched
// independently; a failed fetch degrades that counter to zero instead of
// failing the whole response.
type StatsService struct {
	requests   repository.IRequestRepository
	events     repository.IEventRepository
	users      repository.IUserRepository
	newsletter repository.INewsletterRepository
	log        *zap.Logger
}

func NewStatsService(log *zap.Logger, requests repository.IRequestRepository, events repository.IEventRepository, users repository.IUserRepository, newsletter repository.INewsletterRepository) *StatsService {
	return &StatsService{
		requests:   requests,
		events:     events,
		users:      users,
		newsletter: newsletter,
		log:        log,
	}
}

// Aggregate never returns an error; degraded sources are logged and reported
// as zero.
func (s *StatsService) Aggregate(ctx context.Context) model.Stats {
	defer timer.Track("StatsService.Aggregate")()

	var stats model.Stats

	if n, err := s.requests.CountByStatus(ctx, model.RequestStatusPending); err != nil {
		s.log.Warn("stats: pending request count unavailable", zap.Error(err))
	} else {
		stats.PendingRequests = n
	}

	if n, err := s.events.CountByStatus(ctx, model.EventStatusApproved); err != nil {
		s.log.Warn("stats: approved event count unavailable", zap.Error(err))
	} else {
		stats.UpcomingEvents = n
	}

	if n, err := s.users.Count(ctx); err != nil {
		s.log.Warn("stats: volunteer count unavailable", zap.Error(err))
	} else {
		stats.TotalVolunteers = n
	}

	if n, err := s.newsletter.Count(ctx); err != nil {
		s.log.Warn("stats: newsletter count unavailable", zap.Error(err))
	} else {
		stats.NewsletterSubscribers = n
	}

	return stats
}
