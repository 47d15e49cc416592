package model

import "time"

// User is the principal owning bookings. Referenced by bookings, never
// mutated through this service.
type User struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
