package schema

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Latitude     float64 `json:"latitude" bson:"latitude"`
	Longitude    float64 `json:"longitude" bson:"longitude"`
	Address      string  `json:"address,omitempty" bson:"address,omitempty"`
	Neighborhood string  `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
}

// Account is a registered email identity. Password hashes never leave the store.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the public view of an account
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Identity returns the public view of the account
func (a Account) Identity() Identity {
	return Identity{
		ID:    a.ID.String(),
		Email: a.Email,
	}
}
