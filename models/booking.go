package models

import "time"

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingPaid      BookingStatus = "paid"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// OccupyingStatuses are the statuses that hold a slot for their interval.
// Pending requests may overlap; only one may ever be approved per window.
var OccupyingStatuses = []BookingStatus{BookingApproved, BookingPaid}

// ActiveStatuses are the non-terminal statuses. Bookings in these states
// block slot deletion and manual availability overrides.
var ActiveStatuses = []BookingStatus{BookingPending, BookingApproved, BookingPaid}

// Terminal reports whether s admits no further transitions.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a user's reservation of a slot for the half-open interval
// [StartTime, EndTime). Bookings are never deleted, only terminalized.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	SlotID          string        `bson:"slot_id" json:"slot_id"`
	StartTime       time.Time     `bson:"start_time" json:"start_time"`
	EndTime         time.Time     `bson:"end_time" json:"end_time"`
	Duration        int           `bson:"duration" json:"duration"` // hours, equals EndTime-StartTime
	TotalAmount     float64       `bson:"total_amount" json:"total_amount"`
	Status          BookingStatus `bson:"status" json:"status"`
	PaymentIntentID string        `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	ApprovedAt      *time.Time    `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	PaidAt          *time.Time    `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}

// Overlaps reports whether the booking's interval intersects [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
