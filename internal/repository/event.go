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

// IEventRepository defines event persistence
type IEventRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Event, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// EventRepository implements event persistence
type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) IEventRepository {
	return &EventRepository{collection: db.Collection("events")}
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event *model.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.New(apperror.NotFound, "event not found")
		}
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to look up event", err)
	}
	return event, nil
}

func (r *EventRepository) FindByStatus(ctx context.Context, status string) ([]*model.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to list events", err)
	}
	defer cursor.Close(ctx)

	var events []*model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to decode events", err)
	}
	return events, nil
}

// UpdateFields performs a shallow partial merge at the document top level.
func (r *EventRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return apperror.Wrap(apperror.UpstreamFailure, "failed to update event", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "event not found")
	}
	return nil
}

func (r *EventRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
