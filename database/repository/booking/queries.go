package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a booking by its ID. Returns (nil, nil) when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByUser returns a user's bookings, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListBySlotIDs returns bookings against any of the given slots, optionally
// narrowed to a status set, newest first. Used for owner-facing listings.
func (r *MongoBookingRepo) ListBySlotIDs(slotIDs []string, statuses []models.BookingStatus) ([]models.Booking, error) {
	if len(slotIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{"slot_id": bson.M{"$in": slotIDs}}
	if len(statuses) > 0 {
		query["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by slots: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CountForSlot counts bookings on a slot in any of the given statuses.
func (r *MongoBookingRepo) CountForSlot(slotID string, statuses []models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.bookingColl.CountDocuments(ctx, bson.M{
		"slot_id": slotID,
		"status":  bson.M{"$in": statuses},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for slot %s: %w", slotID, err)
	}
	return n, nil
}

// CountForUser counts a user's bookings in any of the given statuses.
func (r *MongoBookingRepo) CountForUser(userID string, statuses []models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.bookingColl.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": statuses},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for user %s: %w", userID, err)
	}
	return n, nil
}
