package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomdesk/pkg/model"
)

var seedRooms = []model.Room{
	{
		Name:      "Board Room",
		Capacity:  12,
		Location:  "3rd Floor",
		Amenities: []string{"Projector", "Whiteboard", "Video Conference", "Phone", "TV Screen"},
	},
	{
		Name:      "Small Meeting Room A",
		Capacity:  4,
		Location:  "2nd Floor",
		Amenities: []string{"Whiteboard", "TV Screen"},
	},
	{
		Name:      "Small Meeting Room B",
		Capacity:  4,
		Location:  "2nd Floor",
		Amenities: []string{"Whiteboard", "Video Conference"},
	},
	{
		Name:      "Large Conference Room",
		Capacity:  20,
		Location:  "1st Floor",
		Amenities: []string{"Projector", "Whiteboard", "Video Conference"},
	},
}

var seedUsers = []model.User{
	{Name: "John Doe"},
	{Name: "Jane Smith"},
	{Name: "Bob Wilson"},
}

// Seed upserts the baseline rooms and users by name, so re-running the
// migration binary never duplicates them.
func Seed(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	now := time.Now().UTC()

	rooms := db.Collection("Rooms")
	for _, room := range seedRooms {
		update := bson.M{
			"$set": bson.M{
				"capacity":  room.Capacity,
				"location":  room.Location,
				"amenities": room.Amenities,
			},
			"$setOnInsert": bson.M{
				"name":       room.Name,
				"created_at": now,
			},
		}
		_, err := rooms.UpdateOne(ctx, bson.M{"name": room.Name}, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("failed to seed room %q: %w", room.Name, err)
		}
	}

	users := db.Collection("Users")
	for _, user := range seedUsers {
		update := bson.M{
			"$setOnInsert": bson.M{
				"name":       user.Name,
				"created_at": now,
			},
		}
		_, err := users.UpdateOne(ctx, bson.M{"name": user.Name}, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Name, err)
		}
	}

	return nil
}
