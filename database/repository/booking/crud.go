package bookingRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatusCAS flips a booking from one status to another only if it is
// still in the expected source status. Returns ErrStatusChanged otherwise.
func (r *MongoBookingRepo) UpdateStatusCAS(id string, from, to models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": to}
	if to == models.BookingApproved {
		set["approved_at"] = time.Now()
	}

	result, err := r.bookingColl.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrStatusChanged
	}
	return nil
}

// MarkPaid flips an approved booking to paid and stores the payment
// provider's reference. Returns ErrStatusChanged if the booking left the
// approved state in the meantime.
func (r *MongoBookingRepo) MarkPaid(id, paymentIntentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bookingColl.UpdateOne(ctx,
		bson.M{"id": id, "status": models.BookingApproved},
		bson.M{"$set": bson.M{
			"status":            models.BookingPaid,
			"payment_intent_id": paymentIntentID,
			"paid_at":           time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrStatusChanged
	}
	return nil
}
