package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/repository"
	"outreach/pkg/util"
)

// RequestService manages the free-form request records. There is no state
// machine: status and decision are unconstrained field writes.
type RequestService struct {
	repo repository.IRequestRepository
	log  *zap.Logger
}

func NewRequestService(log *zap.Logger, repo repository.IRequestRepository) *RequestService {
	return &RequestService{repo: repo, log: log}
}

// List returns requests matching the optional equality filters.
func (s *RequestService) List(ctx context.Context, requestType, status string) ([]*model.Request, error) {
	filter := bson.M{}
	if requestType != "" {
		filter["type"] = requestType
	}
	if status != "" {
		filter["status"] = status
	}
	return s.repo.Find(ctx, filter)
}

// Update merges arbitrary fields into the request document and stamps
// updatedAt. The id itself is never writable.
func (s *RequestService) Update(ctx context.Context, id string, fields map[string]any) error {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return apperror.Wrap(apperror.InvalidInput, "invalid request id", err)
	}

	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return apperror.New(apperror.InvalidInput, "no fields to update")
	}
	set["updatedAt"] = time.Now()

	return s.repo.UpdateFields(ctx, objID, set)
}
