package model

import "time"

// Room is a bookable resource. Amenities are descriptive tags only; they
// play no part in conflict detection.
type Room struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,max=100"`
	Capacity  int       `json:"capacity" bson:"capacity" validate:"required,min=1,max=500"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=200"`
	Amenities []string  `json:"amenities" bson:"amenities" validate:"omitempty,dive,max=50"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BookingSlot is one occupied interval in an availability response,
// expressed in business-local time.
type BookingSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Title     string    `json:"title"`
}

// Availability summarises one room's calendar day. IsAvailable means at
// least one free gap exists inside business hours; HasAnyBookings
// distinguishes a completely free day from a partially booked one.
type Availability struct {
	RoomID         string        `json:"room_id"`
	RoomName       string        `json:"room_name"`
	Date           time.Time     `json:"date"`
	Bookings       []BookingSlot `json:"bookings"`
	IsAvailable    bool          `json:"is_available"`
	HasAnyBookings bool          `json:"has_any_bookings"`
}
