package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApproveTransactionally performs the read-check-write for booking approval
// as a single Mongo transaction: a conflict scan over occupying bookings with
// an overlapping interval, a compare-and-swap of the booking from pending to
// approved, and the slot availability write. Either all three apply or none.
//
// Two racing approvals both pass the conflict scan under snapshot isolation
// and collide on the slot document write; the loser aborts with a transient
// write conflict. WithTransaction retries transient errors, so the loser's
// re-run scan observes the committed winner and returns ErrSlotConflict.
func (r *MongoBookingRepo) ApproveTransactionally(ctx context.Context, bookingID, slotID string, start, end time.Time) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Half-open interval overlap: existing.start < end && existing.end > start.
		conflictFilter := bson.M{
			"slot_id":    slotID,
			"id":         bson.M{"$ne": bookingID},
			"status":     bson.M{"$in": models.OccupyingStatuses},
			"start_time": bson.M{"$lt": end},
			"end_time":   bson.M{"$gt": start},
		}
		conflicts, err := r.bookingColl.CountDocuments(sc, conflictFilter)
		if err != nil {
			return nil, fmt.Errorf("conflict scan failed: %w", err)
		}
		if conflicts > 0 {
			return nil, ErrSlotConflict
		}

		res, err := r.bookingColl.UpdateOne(sc,
			bson.M{"id": bookingID, "status": models.BookingPending},
			bson.M{"$set": bson.M{
				"status":      models.BookingApproved,
				"approved_at": time.Now(),
			}},
		)
		if err != nil {
			return nil, fmt.Errorf("approve update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrStatusChanged
		}

		if _, err := r.slotColl.UpdateOne(sc,
			bson.M{"id": slotID},
			bson.M{"$set": bson.M{"is_available": false}},
		); err != nil {
			return nil, fmt.Errorf("slot availability update failed: %w", err)
		}

		return nil, nil
	})
	return err
}

// FinalizeTransactionally moves a booking to a terminal status and releases
// the slot: availability becomes true again unless another occupying booking
// still references the slot. Transient write conflicts are retried by
// WithTransaction, same as approval.
func (r *MongoBookingRepo) FinalizeTransactionally(ctx context.Context, bookingID, slotID string, from, to models.BookingStatus) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.bookingColl.UpdateOne(sc,
			bson.M{"id": bookingID, "status": from},
			bson.M{"$set": bson.M{"status": to}},
		)
		if err != nil {
			return nil, fmt.Errorf("finalize update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrStatusChanged
		}

		remaining, err := r.bookingColl.CountDocuments(sc, bson.M{
			"slot_id": slotID,
			"id":      bson.M{"$ne": bookingID},
			"status":  bson.M{"$in": models.OccupyingStatuses},
		})
		if err != nil {
			return nil, fmt.Errorf("occupancy recount failed: %w", err)
		}

		if remaining == 0 {
			if _, err := r.slotColl.UpdateOne(sc,
				bson.M{"id": slotID},
				bson.M{"$set": bson.M{"is_available": true}},
			); err != nil {
				return nil, fmt.Errorf("slot availability update failed: %w", err)
			}
		}

		return nil, nil
	})
	return err
}
