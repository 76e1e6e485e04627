package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"outreach/internal/apperror"
	"outreach/internal/model"
)

// IRequestRepository defines request persistence
type IRequestRepository interface {
	Find(ctx context.Context, filter bson.M) ([]*model.Request, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// RequestRepository implements request persistence
type RequestRepository struct {
	collection *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) IRequestRepository {
	return &RequestRepository{collection: db.Collection("requests")}
}

func (r *RequestRepository) Find(ctx context.Context, filter bson.M) ([]*model.Request, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to list requests", err)
	}
	defer cursor.Close(ctx)

	var requests []*model.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to decode requests", err)
	}
	return requests, nil
}

// UpdateFields merges arbitrary top-level fields into the document.
func (r *RequestRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return apperror.Wrap(apperror.UpstreamFailure, "failed to update request", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "request not found")
	}
	return nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
