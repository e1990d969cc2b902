package bookingRepo

import (
	"context"
	"time"

	"parkwise/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo is the MongoDB-backed BookingRepository. It also holds a
// handle on the slots collection: approval and finalization mutate both
// inside one transaction.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	slotColl    *mongo.Collection
}

// NewMongoBookingRepo returns a repository bound to the bookings and
// parking_slots collections.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		bookingColl: database.Collection("bookings"),
		slotColl:    database.Collection("parking_slots"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
