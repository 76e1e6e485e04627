package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request is a staff-managed record. Beyond the named fields the document is
// free form: updates are unconstrained field merges, and unknown fields
// round-trip through Extra.
type Request struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Decision  string             `bson:"decision,omitempty" json:"decision,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Extra     map[string]any     `bson:",inline" json:"extra,omitempty"`
}

// RequestStatusPending is the status counted by the stats endpoint.
const RequestStatusPending = "Pending"
