// Package repository holds the thin accessor layer over the document store:
// one interface and one Mongo implementation per collection.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"outreach/internal/apperror"
	"outreach/internal/model"
)

// IAccountRepository defines identity account persistence
type IAccountRepository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error)
}

// AccountRepository implements account persistence
type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) IAccountRepository {
	return &AccountRepository{collection: db.Collection("accounts")}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	account.CreatedAt = time.Now()

	if existing, err := r.FindByEmail(ctx, account.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.New(apperror.InvalidInput, "an account with this email already exists")
	}

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to create account", err)
	}
	return account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account *model.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to look up account", err)
	}
	return account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	var account *model.Account
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.New(apperror.NotFound, "account not found")
		}
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to look up account", err)
	}
	return account, nil
}
