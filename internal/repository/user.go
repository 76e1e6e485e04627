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

// IUserRepository defines persistence for the mirrored user documents
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository implements user persistence
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	// The id is set by the caller so the document mirrors its account.
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to create user", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.New(apperror.NotFound, "user not found")
		}
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to look up user", err)
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to list users", err)
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to decode users", err)
	}
	return users, nil
}

// UpdateFields performs a shallow partial merge at the document top level.
// Nested objects are replaced whole; callers reconstruct them first.
func (r *UserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return apperror.Wrap(apperror.UpstreamFailure, "failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
