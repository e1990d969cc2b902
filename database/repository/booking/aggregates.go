package bookingRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CountByStatus counts bookings in the given status across all slots.
func (r *MongoBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.bookingColl.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// CountDistinctOccupiedSlots counts slots among slotIDs with at least one
// paid booking.
func (r *MongoBookingRepo) CountDistinctOccupiedSlots(slotIDs []string) (int64, error) {
	if len(slotIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ids, err := r.bookingColl.Distinct(ctx, "slot_id", bson.M{
		"slot_id": bson.M{"$in": slotIDs},
		"status":  models.BookingPaid,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count occupied slots: %w", err)
	}
	return int64(len(ids)), nil
}

// RevenueSince sums totalAmount over paid bookings created at or after
// 'since'. A nil slotIDs slice aggregates system-wide; otherwise revenue is
// restricted to the given slots.
func (r *MongoBookingRepo) RevenueSince(since time.Time, slotIDs []string) (float64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	match := bson.M{
		"status":     models.BookingPaid,
		"created_at": bson.M{"$gte": since},
	}
	if slotIDs != nil {
		if len(slotIDs) == 0 {
			return 0, nil
		}
		match["slot_id"] = bson.M{"$in": slotIDs}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}},
	}

	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
