package slot

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	ownerRepo "parkwise/database/repository/owner"
	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"
	booking "parkwise/services/booking"
	"parkwise/utils"

	"github.com/google/uuid"
)

// SlotService manages parking slot listings. Availability writes go through
// the coordinator; everything else is plain attribute CRUD gated on ownership.
type SlotService interface {
	Create(ctx context.Context, ownerUserID string, input models.SlotInput) (*models.ParkingSlot, error)
	GetByID(ctx context.Context, id string) (*models.ParkingSlot, error)
	ListAvailable(ctx context.Context, filter models.SlotFilter) ([]models.ParkingSlot, error)
	ListMine(ctx context.Context, ownerUserID string) ([]models.ParkingSlot, error)
	Update(ctx context.Context, ownerUserID, slotID string, update models.SlotUpdate) (*models.ParkingSlot, error)
	SetAvailability(ctx context.Context, ownerUserID, slotID string, available bool) (*models.ParkingSlot, error)
	Delete(ctx context.Context, ownerUserID, slotID string) error
}

// DefaultSlotService is the production implementation.
type DefaultSlotService struct {
	Repo        slotRepo.SlotRepository
	Owners      ownerRepo.OwnerRepository
	Bookings    bookingRepo.BookingRepository
	Coordinator booking.AvailabilityCoordinator
}

// Create lists a new slot under the caller's approved owner profile. New
// slots start available.
func (s *DefaultSlotService) Create(ctx context.Context, ownerUserID string, input models.SlotInput) (*models.ParkingSlot, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Address == "" || input.City == "" {
		return nil, utils.NewValidationError("name, address and city are required")
	}
	if !input.VehicleType.Valid() {
		return nil, utils.NewValidationError("vehicle_type must be 2-wheeler, 4-wheeler or suv")
	}
	if !input.SlotType.Valid() {
		return nil, utils.NewValidationError("slot_type must be covered or open")
	}
	if input.PricePerHour <= 0 {
		return nil, utils.NewValidationError("price_per_hour must be positive")
	}

	owner, err := s.approvedOwner(ownerUserID)
	if err != nil {
		return nil, err
	}

	slot := &models.ParkingSlot{
		ID:           uuid.New().String(),
		OwnerID:      owner.ID,
		Name:         input.Name,
		Address:      input.Address,
		City:         input.City,
		VehicleType:  input.VehicleType,
		SlotType:     input.SlotType,
		PricePerHour: input.PricePerHour,
		IsAvailable:  true,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}
	return slot, nil
}

// GetByID fetches one slot.
func (s *DefaultSlotService) GetByID(ctx context.Context, id string) (*models.ParkingSlot, error) {
	slot, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, utils.NewNotFoundError("parking slot not found")
	}
	return slot, nil
}

// ListAvailable is the public browse listing.
func (s *DefaultSlotService) ListAvailable(ctx context.Context, filter models.SlotFilter) ([]models.ParkingSlot, error) {
	if filter.VehicleType != "" && !filter.VehicleType.Valid() {
		return nil, utils.NewValidationError("vehicle_type must be 2-wheeler, 4-wheeler or suv")
	}
	return s.Repo.ListAvailable(filter)
}

// ListMine returns all slots of the caller's owner profile, available or not.
func (s *DefaultSlotService) ListMine(ctx context.Context, ownerUserID string) ([]models.ParkingSlot, error) {
	owner, err := s.ownerForUser(ownerUserID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOwner(owner.ID)
}

// Update edits slot attributes. The availability flag is not reachable from
// here.
func (s *DefaultSlotService) Update(ctx context.Context, ownerUserID, slotID string, update models.SlotUpdate) (*models.ParkingSlot, error) {
	slot, err := s.ownedSlot(ownerUserID, slotID)
	if err != nil {
		return nil, err
	}
	if update.VehicleType != nil && !update.VehicleType.Valid() {
		return nil, utils.NewValidationError("vehicle_type must be 2-wheeler, 4-wheeler or suv")
	}
	if update.SlotType != nil && !update.SlotType.Valid() {
		return nil, utils.NewValidationError("slot_type must be covered or open")
	}
	if update.PricePerHour != nil && *update.PricePerHour <= 0 {
		return nil, utils.NewValidationError("price_per_hour must be positive")
	}

	if err := s.Repo.UpdateAttributes(slot.ID, update); err != nil {
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}
	return s.Repo.GetByID(slot.ID)
}

// SetAvailability is the owner's manual override, refused while active
// bookings reference the slot.
func (s *DefaultSlotService) SetAvailability(ctx context.Context, ownerUserID, slotID string, available bool) (*models.ParkingSlot, error) {
	slot, err := s.ownedSlot(ownerUserID, slotID)
	if err != nil {
		return nil, err
	}
	if err := s.Coordinator.ManualOverride(ctx, slot.ID, available); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(slot.ID)
}

// Delete removes a listing, refused while active bookings reference it.
// Terminal bookings keep their slot_id as a dangling historical reference.
func (s *DefaultSlotService) Delete(ctx context.Context, ownerUserID, slotID string) error {
	slot, err := s.ownedSlot(ownerUserID, slotID)
	if err != nil {
		return err
	}

	active, err := s.Bookings.CountForSlot(slot.ID, models.ActiveStatuses)
	if err != nil {
		return err
	}
	if active > 0 {
		return utils.NewConflictError("slot has active bookings and cannot be deleted")
	}

	return s.Repo.Delete(slot.ID)
}

// ownedSlot loads the slot and verifies the caller's owner profile owns it.
func (s *DefaultSlotService) ownedSlot(ownerUserID, slotID string) (*models.ParkingSlot, error) {
	slot, err := s.Repo.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, utils.NewNotFoundError("parking slot not found")
	}

	owner, err := s.ownerForUser(ownerUserID)
	if err != nil {
		return nil, err
	}
	if slot.OwnerID != owner.ID {
		return nil, utils.NewAuthorizationError("not permitted")
	}
	return slot, nil
}

func (s *DefaultSlotService) ownerForUser(userID string) (*models.Owner, error) {
	owner, err := s.Owners.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.NewAuthorizationError("not permitted")
	}
	return owner, nil
}

func (s *DefaultSlotService) approvedOwner(userID string) (*models.Owner, error) {
	owner, err := s.ownerForUser(userID)
	if err != nil {
		return nil, err
	}
	if owner.Status != models.OwnerApproved {
		return nil, utils.NewAuthorizationError("owner profile is not approved")
	}
	return owner, nil
}
