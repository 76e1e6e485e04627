package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event statuses. Status is a free-form field write, not a modeled workflow;
// these are the values the admin panel uses.
const (
	EventStatusPending  = "Pending"
	EventStatusApproved = "Approved"
	EventStatusRejected = "Rejected"
)

// EventContent is the nested media block of an event. The store merges
// shallowly at the document top level, so callers must reconstruct the whole
// block in memory before writing it back.
type EventContent struct {
	Photos    []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	Videos    []string  `bson:"videos,omitempty" json:"videos,omitempty"`
	Documents []string  `bson:"documents,omitempty" json:"documents,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EventContentPatch carries the content fields a PATCH may replace. Nil
// slices leave the existing sub-arrays untouched.
type EventContentPatch struct {
	Photos    []string `json:"photos"`
	Videos    []string `json:"videos"`
	Documents []string `json:"documents"`
}

// Event is a document in the events collection.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventTitle    string             `bson:"eventTitle" json:"eventTitle"`
	Purpose       string             `bson:"purpose,omitempty" json:"purpose,omitempty"`
	StartTime     string             `bson:"startTime,omitempty" json:"startTime,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	IsPublicEvent bool               `bson:"isPublicEvent" json:"isPublicEvent"`
	Status        string             `bson:"status" json:"status"`
	Content       *EventContent      `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PublicEvent is the simplified view returned by the public listing.
type PublicEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Purpose   string `json:"purpose,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	Location  string `json:"location,omitempty"`
	Date      string `json:"date,omitempty"`
	IsPublic  bool   `json:"isPublic"`
}

// ToPublic reshapes an event into its public view.
func (e *Event) ToPublic() PublicEvent {
	return PublicEvent{
		ID:        e.ID.Hex(),
		Title:     e.EventTitle,
		Purpose:   e.Purpose,
		StartTime: e.StartTime,
		Location:  e.Location,
		Date:      e.Date,
		IsPublic:  e.IsPublicEvent,
	}
}
