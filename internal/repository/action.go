package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"outreach/internal/apperror"
	"outreach/internal/model"
)

// IActionRepository defines persistence for the mvp2 action log and its
// counter documents.
type IActionRepository interface {
	Insert(ctx context.Context, entry *model.ActionEntry) error
	Find(ctx context.Context, personID, action string) ([]*model.ActionEntry, error)
	// NextIndex atomically increments and returns the counter for the
	// (personId, action) pair. The first call for a pair returns 1.
	NextIndex(ctx context.Context, personID, action string) (int64, error)
}

// ActionRepository implements action persistence over two collections:
// mvp2 for the entries and counters for the per-pair indices.
type ActionRepository struct {
	entries  *mongo.Collection
	counters *mongo.Collection
}

func NewActionRepository(db *mongo.Database) IActionRepository {
	return &ActionRepository{
		entries:  db.Collection("mvp2"),
		counters: db.Collection("counters"),
	}
}

func (r *ActionRepository) Insert(ctx context.Context, entry *model.ActionEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now()
	if _, err := r.entries.InsertOne(ctx, entry); err != nil {
		return apperror.Wrap(apperror.UpstreamFailure, "failed to record action", err)
	}
	return nil
}

func (r *ActionRepository) Find(ctx context.Context, personID, action string) ([]*model.ActionEntry, error) {
	filter := bson.M{}
	if personID != "" {
		filter["personId"] = personID
	}
	if action != "" {
		filter["action"] = action
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.entries.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to list actions", err)
	}
	defer cursor.Close(ctx)

	var entries []*model.ActionEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to decode actions", err)
	}
	return entries, nil
}

// NextIndex uses a findAndModify $inc upsert so two concurrent submissions
// for the same pair can never observe the same value.
func (r *ActionRepository) NextIndex(ctx context.Context, personID, action string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{
		"$inc": bson.M{"count": int64(1)},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	var counter model.ActionCounter
	err := r.counters.FindOneAndUpdate(ctx, bson.M{"_id": personID + ":" + action}, update, opts).Decode(&counter)
	if err != nil {
		return 0, apperror.Wrap(apperror.UpstreamFailure, "failed to advance action counter", err)
	}
	return counter.Count, nil
}
