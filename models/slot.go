package models

import "time"

// VehicleType categorizes which vehicles fit a slot.
type VehicleType string

const (
	VehicleTwoWheeler  VehicleType = "2-wheeler"
	VehicleFourWheeler VehicleType = "4-wheeler"
	VehicleSUV         VehicleType = "suv"
)

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTwoWheeler, VehicleFourWheeler, VehicleSUV:
		return true
	}
	return false
}

// SlotType distinguishes covered from open-air slots.
type SlotType string

const (
	SlotCovered SlotType = "covered"
	SlotOpen    SlotType = "open"
)

func (s SlotType) Valid() bool {
	return s == SlotCovered || s == SlotOpen
}

// ParkingSlot is a listed parking space. IsAvailable is a denormalized
// marker maintained exclusively by the availability coordinator; the
// authoritative occupancy state is the set of approved/paid bookings.
type ParkingSlot struct {
	ID           string      `bson:"id" json:"id"`
	OwnerID      string      `bson:"owner_id" json:"owner_id"`
	Name         string      `bson:"name" json:"name"`
	Address      string      `bson:"address" json:"address"`
	City         string      `bson:"city" json:"city"`
	VehicleType  VehicleType `bson:"vehicle_type" json:"vehicle_type"`
	SlotType     SlotType    `bson:"slot_type" json:"slot_type"`
	PricePerHour float64     `bson:"price_per_hour" json:"price_per_hour"`
	IsAvailable  bool        `bson:"is_available" json:"is_available"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}

// SlotInput is the payload for creating a slot.
type SlotInput struct {
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	VehicleType  VehicleType `json:"vehicle_type"`
	SlotType     SlotType    `json:"slot_type"`
	PricePerHour float64     `json:"price_per_hour"`
}

// SlotUpdate carries the attribute edits an owner may apply directly.
// Occupancy-affecting fields are deliberately absent.
type SlotUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Address      *string      `json:"address,omitempty"`
	City         *string      `json:"city,omitempty"`
	VehicleType  *VehicleType `json:"vehicle_type,omitempty"`
	SlotType     *SlotType    `json:"slot_type,omitempty"`
	PricePerHour *float64     `json:"price_per_hour,omitempty"`
}

// SlotFilter narrows the public slot listing.
type SlotFilter struct {
	City        string
	VehicleType VehicleType
}
