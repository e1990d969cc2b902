package notificationRepo

import (
	"context"
	"time"

	"parkwise/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoNotificationRepo is the MongoDB-backed NotificationRepository.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a repository bound to the notifications
// collection.
func NewMongoNotificationRepo() *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: database.Collection("notifications")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
