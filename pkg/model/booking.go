package model

import (
	"time"

	"roomdesk/pkg/tz"
)

// Booking is the stored form: instants are absolute UTC, resolved display
// names live on BookingDetail only.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID    string    `json:"room_id" bson:"room_id" validate:"required,mongodb"`
	UserID    string    `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	Title     string    `json:"title" bson:"title" validate:"required,max=100"`
	StartTime time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" bson:"end_time" validate:"required"`
	Status    Status    `json:"status" bson:"status" validate:"required,oneof=confirmed cancelled rescheduled updated"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateBookingRequest carries client input for a new booking. Times are
// civil wall-clock values in the business timezone.
type CreateBookingRequest struct {
	RoomID    string       `json:"room_id" validate:"required,mongodb"`
	UserID    string       `json:"user_id" validate:"required,mongodb"`
	StartTime tz.CivilTime `json:"start_time" validate:"required"`
	EndTime   tz.CivilTime `json:"end_time" validate:"required"`
	Title     string       `json:"title" validate:"required,max=100"`
}

// UpdateBookingRequest carries a partial reschedule/update. Nil time fields
// keep the stored instants; blank titles are ignored.
type UpdateBookingRequest struct {
	StartTime *tz.CivilTime `json:"start_time,omitempty"`
	EndTime   *tz.CivilTime `json:"end_time,omitempty"`
	Title     string        `json:"title,omitempty" validate:"omitempty,max=100"`
}

// BookingDetail is the API representation: display names resolved, times
// converted to business-local with their offset.
type BookingDetail struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
