package slotRepo

import (
	"context"
	"time"

	"parkwise/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSlotRepo is the MongoDB-backed SlotRepository.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo returns a repository bound to the parking_slots collection.
func NewMongoSlotRepo() *MongoSlotRepo {
	return &MongoSlotRepo{coll: database.Collection("parking_slots")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
