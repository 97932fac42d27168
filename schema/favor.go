package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FavorCollection = "favors"

	// AnonymousPoster is recorded as the poster of favors created without
	// a signed-in identity.
	AnonymousPoster = "unknown"
)

type FavorStatus string

const (
	FavorOpen       FavorStatus = "open"
	FavorInProgress FavorStatus = "in_progress"
	FavorCompleted  FavorStatus = "completed"
)

// Valid reports whether the status is one of the known favor states
func (s FavorStatus) Valid() bool {
	switch s {
	case FavorOpen, FavorInProgress, FavorCompleted:
		return true
	}
	return false
}

// FavorField is a favor attribute which can be used as an equality filter
type FavorField string

const (
	FieldPostedBy   FavorField = "posted_by"
	FieldAcceptedBy FavorField = "accepted_by"
)

// Favor - a shared task request
type Favor struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Location    *Location          `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	Status      FavorStatus        `json:"status" bson:"status"`
	PostedBy    string             `json:"posted_by" bson:"posted_by"`
	AcceptedBy  string             `json:"accepted_by,omitempty" bson:"accepted_by,omitempty"`
	AcceptedAt  *time.Time         `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
