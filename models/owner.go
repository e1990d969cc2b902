package models

import "time"

// OwnerStatus is the approval state of an owner application.
type OwnerStatus string

const (
	OwnerPending  OwnerStatus = "pending"
	OwnerApproved OwnerStatus = "approved"
	OwnerRejected OwnerStatus = "rejected"
)

// Owner is the business profile attached 1:1 to a user account with the
// owner role. Only approved owners may list slots or decide bookings.
type Owner struct {
	ID           string      `bson:"id" json:"id"`
	UserID       string      `bson:"user_id" json:"user_id"`
	BusinessName string      `bson:"business_name" json:"business_name"`
	Address      string      `bson:"address" json:"address"`
	City         string      `bson:"city" json:"city"`
	Phone        string      `bson:"phone" json:"phone"`
	Status       OwnerStatus `bson:"status" json:"status"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	ApprovedAt   *time.Time  `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
}

// OwnerApplication is the payload submitted by a user applying to list slots.
type OwnerApplication struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
}
