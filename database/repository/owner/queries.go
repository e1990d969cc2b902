package ownerRepo

import (
	"errors"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches an owner by its ID. Returns (nil, nil) when absent.
func (r *MongoOwnerRepo) GetByID(id string) (*models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.Owner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&owner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner with id %s: %w", id, err)
	}
	return &owner, nil
}

// GetByUserID fetches the owner profile attached to a user account.
func (r *MongoOwnerRepo) GetByUserID(userID string) (*models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.Owner
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&owner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner for user %s: %w", userID, err)
	}
	return &owner, nil
}

// ListPending returns owner applications awaiting an admin decision.
func (r *MongoOwnerRepo) ListPending() ([]models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.OwnerPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending owners: %w", err)
	}
	defer cursor.Close(ctx)

	var owners []models.Owner
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("failed to decode pending owners: %w", err)
	}
	return owners, nil
}

// CountByStatus counts owners in the given status.
func (r *MongoOwnerRepo) CountByStatus(status models.OwnerStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return n, nil
}
