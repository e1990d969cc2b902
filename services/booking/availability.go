package booking

import (
	"context"
	"errors"

	bookingRepo "parkwise/database/repository/booking"
	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"
	"parkwise/utils"
)

// AvailabilityCoordinator is the single authority over a slot's availability.
// Nothing else writes the isAvailable flag: approvals reserve through
// CheckAndReserve, terminal transitions release through Release, and owner
// overrides pass the ManualOverride gate.
type AvailabilityCoordinator interface {
	CheckAndReserve(ctx context.Context, b *models.Booking) error
	Release(ctx context.Context, b *models.Booking, outcome models.BookingStatus) error
	ManualOverride(ctx context.Context, slotID string, available bool) error
}

// DefaultAvailabilityCoordinator delegates to the transactional repository
// primitives so the check and the write share one serialization scope.
type DefaultAvailabilityCoordinator struct {
	Bookings bookingRepo.BookingRepository
	Slots    slotRepo.SlotRepository
}

// CheckAndReserve atomically approves the booking unless an approved or paid
// booking already overlaps its interval. Losing the race leaves the booking
// pending and returns a conflict error.
func (c *DefaultAvailabilityCoordinator) CheckAndReserve(ctx context.Context, b *models.Booking) error {
	err := c.Bookings.ApproveTransactionally(ctx, b.ID, b.SlotID, b.StartTime, b.EndTime)
	if errors.Is(err, bookingRepo.ErrSlotConflict) {
		return utils.NewConflictError("slot no longer available, please choose another")
	}
	if errors.Is(err, bookingRepo.ErrStatusChanged) {
		return utils.NewStateError("booking is no longer pending")
	}
	return err
}

// Release moves the booking to a terminal status and restores availability
// when no other occupying booking remains on the slot.
func (c *DefaultAvailabilityCoordinator) Release(ctx context.Context, b *models.Booking, outcome models.BookingStatus) error {
	err := c.Bookings.FinalizeTransactionally(ctx, b.ID, b.SlotID, b.Status, outcome)
	if errors.Is(err, bookingRepo.ErrStatusChanged) {
		return utils.NewStateError("booking status changed, refresh and retry")
	}
	return err
}

// ManualOverride lets an owner force the availability flag, but only while
// no active booking references the slot; availability is otherwise derived
// from booking state.
func (c *DefaultAvailabilityCoordinator) ManualOverride(ctx context.Context, slotID string, available bool) error {
	active, err := c.Bookings.CountForSlot(slotID, models.ActiveStatuses)
	if err != nil {
		return err
	}
	if active > 0 {
		return utils.NewConflictError("slot has active bookings; availability is managed automatically")
	}
	return c.Slots.SetAvailability(slotID, available)
}
