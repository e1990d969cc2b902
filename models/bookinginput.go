package models

import "time"

// BookingRequest is the payload for requesting a booking against a slot.
type BookingRequest struct {
	SlotID    string    `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"` // hours
}

// BookingDecision is the owner's verdict on a pending booking, or the
// terminal outcome applied to an active one.
type BookingDecision struct {
	Status BookingStatus `json:"status"`
}
