package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionEntry is an append-only tracking record in the mvp2 collection.
// Index is monotonic per (personId, action) pair and assigned from an atomic
// counter document, so concurrent submissions receive distinct values.
type ActionEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PersonID  string             `bson:"personId" json:"personId"`
	Action    string             `bson:"action" json:"action"`
	Index     int64              `bson:"index" json:"index"`
	Metadata  map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ActionCounter is the per-(personId, action) counter document backing the
// index assignment. The _id is "<personId>:<action>".
type ActionCounter struct {
	ID        string    `bson:"_id" json:"id"`
	Count     int64     `bson:"count" json:"count"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Stats is the admin dashboard aggregate. Each count degrades to zero when
// its source fetch fails.
type Stats struct {
	PendingRequests       int64 `json:"pendingRequests"`
	UpcomingEvents        int64 `json:"upcomingEvents"`
	TotalVolunteers       int64 `json:"totalVolunteers"`
	NewsletterSubscribers int64 `json:"newsletterSubscribers"`
}
