package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/pkg/generic"
)

// ISuggestionRepository defines suggestion persistence
type ISuggestionRepository interface {
	Create(ctx context.Context, suggestion *model.Suggestion) error
	FindAllDesc(ctx context.Context) ([]*model.Suggestion, error)
}

// SuggestionRepository builds on the generic base repository; suggestions
// only ever get appended and listed.
type SuggestionRepository struct {
	*generic.MongoBaseRepository[*model.Suggestion]
}

func NewSuggestionRepository(db *mongo.Database) ISuggestionRepository {
	return &SuggestionRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Suggestion](db.Collection("suggestions")),
	}
}

func (r *SuggestionRepository) FindAllDesc(ctx context.Context) ([]*model.Suggestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	suggestions, err := r.Find(ctx, nil, opts)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to list suggestions", err)
	}
	return suggestions, nil
}
