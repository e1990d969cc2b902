package slotRepo

import (
	"errors"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a slot by its ID. Returns (nil, nil) when absent.
func (r *MongoSlotRepo) GetByID(id string) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var slot models.ParkingSlot
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// ListAvailable returns currently available slots matching the filter,
// newest listings first.
func (r *MongoSlotRepo) ListAvailable(filter models.SlotFilter) ([]models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{"is_available": true}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.VehicleType != "" {
		query["vehicle_type"] = filter.VehicleType
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ParkingSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// ListByOwner returns every slot listed by the given owner.
func (r *MongoSlotRepo) ListByOwner(ownerID string) ([]models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.ParkingSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// CountByOwner counts the slots listed by an owner.
func (r *MongoSlotRepo) CountByOwner(ownerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count slots for owner %s: %w", ownerID, err)
	}
	return n, nil
}
