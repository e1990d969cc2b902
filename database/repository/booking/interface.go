package bookingRepo

import (
	"context"
	"errors"
	"time"

	"parkwise/models"
)

// Sentinel errors surfaced by the transactional primitives so the service
// layer can translate them into its own taxonomy.
var (
	// ErrSlotConflict means an approved or paid booking already overlaps the
	// requested interval; the caller lost the availability race.
	ErrSlotConflict = errors.New("conflicting booking holds the slot for this interval")
	// ErrStatusChanged means the booking was no longer in the expected status
	// when the compare-and-swap ran.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)

// BookingRepository defines persistence operations for bookings. Approval and
// finalization are transactional because they couple a booking's status to
// the slot's availability flag.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListBySlotIDs(slotIDs []string, statuses []models.BookingStatus) ([]models.Booking, error)
	UpdateStatusCAS(id string, from, to models.BookingStatus) error
	MarkPaid(id, paymentIntentID string) error
	CountForSlot(slotID string, statuses []models.BookingStatus) (int64, error)
	CountForUser(userID string, statuses []models.BookingStatus) (int64, error)

	// ApproveTransactionally atomically verifies that no approved or paid
	// booking overlaps [start, end) on the slot, flips the booking from
	// pending to approved, and marks the slot unavailable.
	ApproveTransactionally(ctx context.Context, bookingID, slotID string, start, end time.Time) error

	// FinalizeTransactionally atomically moves the booking from 'from' to the
	// terminal 'to' and recomputes the slot's availability from the remaining
	// occupying bookings.
	FinalizeTransactionally(ctx context.Context, bookingID, slotID string, from, to models.BookingStatus) error

	// Aggregations.
	CountByStatus(status models.BookingStatus) (int64, error)
	CountDistinctOccupiedSlots(slotIDs []string) (int64, error)
	RevenueSince(since time.Time, slotIDs []string) (float64, error)
}
