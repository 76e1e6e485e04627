package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterSignup is an append-only record. Duplicate emails are allowed.
type NewsletterSignup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GetID implements generic.Entity.
func (n *NewsletterSignup) GetID() primitive.ObjectID { return n.ID }

// SetID implements generic.Entity.
func (n *NewsletterSignup) SetID(id primitive.ObjectID) { n.ID = id }
