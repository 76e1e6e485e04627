package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionStatusNew is the default status for a freshly created suggestion.
const SuggestionStatusNew = "New"

// Suggestion is a free-form improvement note submitted from the admin panel.
type Suggestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Page        string             `bson:"page,omitempty" json:"page,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GetID implements generic.Entity.
func (s *Suggestion) GetID() primitive.ObjectID { return s.ID }

// SetID implements generic.Entity.
func (s *Suggestion) SetID(id primitive.ObjectID) { s.ID = id }
