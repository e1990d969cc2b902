package ownerRepo

import (
	"context"
	"time"

	"parkwise/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOwnerRepo is the MongoDB-backed OwnerRepository.
type MongoOwnerRepo struct {
	coll *mongo.Collection
}

// NewMongoOwnerRepo returns a repository bound to the owners collection.
func NewMongoOwnerRepo() *MongoOwnerRepo {
	return &MongoOwnerRepo{coll: database.Collection("owners")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
