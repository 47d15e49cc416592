package model

import "time"

// RoomLock is an advisory lock serialising the overlap-scan-then-write
// window for one room. The unique _id makes a second concurrent acquirer
// fail with a duplicate key; expires_at backs a TTL index so crashed
// holders cannot wedge a room.
type RoomLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
