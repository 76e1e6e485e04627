package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/pkg/generic"
)

// INewsletterRepository defines newsletter signup persistence
type INewsletterRepository interface {
	Create(ctx context.Context, signup *model.NewsletterSignup) error
	Count(ctx context.Context) (int64, error)
}

// NewsletterRepository is append-only; there is no dedup and no update path.
type NewsletterRepository struct {
	*generic.MongoBaseRepository[*model.NewsletterSignup]
}

func NewNewsletterRepository(db *mongo.Database) INewsletterRepository {
	return &NewsletterRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.NewsletterSignup](db.Collection("newsletter")),
	}
}

func (r *NewsletterRepository) Create(ctx context.Context, signup *model.NewsletterSignup) error {
	if err := r.MongoBaseRepository.Create(ctx, signup); err != nil {
		return apperror.Wrap(apperror.UpstreamFailure, "failed to record signup", err)
	}
	return nil
}

func (r *NewsletterRepository) Count(ctx context.Context) (int64, error) {
	return r.MongoBaseRepository.Count(ctx, nil)
}
