package slotRepo

import "parkwise/models"

// SlotRepository defines persistence operations for parking slot listings.
// SetAvailability exists for the availability coordinator alone; every other
// caller mutates slots through UpdateAttributes, which cannot touch the flag.
type SlotRepository interface {
	Create(slot *models.ParkingSlot) error
	GetByID(id string) (*models.ParkingSlot, error)
	ListAvailable(filter models.SlotFilter) ([]models.ParkingSlot, error)
	ListByOwner(ownerID string) ([]models.ParkingSlot, error)
	UpdateAttributes(id string, update models.SlotUpdate) error
	SetAvailability(id string, available bool) error
	Delete(id string) error
	CountByOwner(ownerID string) (int64, error)
}
