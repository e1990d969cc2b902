package slot

import (
	"context"
	"sync"
	"testing"

	bookingRepo "parkwise/database/repository/booking"
	"parkwise/models"
	booking "parkwise/services/booking"
	"parkwise/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.ParkingSlot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[string]*models.ParkingSlot)}
}

func (r *memSlotRepo) Create(slot *models.ParkingSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *memSlotRepo) GetByID(id string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSlotRepo) ListAvailable(filter models.SlotFilter) ([]models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ParkingSlot
	for _, s := range r.slots {
		if !s.IsAvailable {
			continue
		}
		if filter.City != "" && s.City != filter.City {
			continue
		}
		if filter.VehicleType != "" && s.VehicleType != filter.VehicleType {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSlotRepo) ListByOwner(ownerID string) ([]models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ParkingSlot
	for _, s := range r.slots {
		if s.OwnerID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) UpdateAttributes(id string, update models.SlotUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.slots[id]
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Address != nil {
		s.Address = *update.Address
	}
	if update.City != nil {
		s.City = *update.City
	}
	if update.VehicleType != nil {
		s.VehicleType = *update.VehicleType
	}
	if update.SlotType != nil {
		s.SlotType = *update.SlotType
	}
	if update.PricePerHour != nil {
		s.PricePerHour = *update.PricePerHour
	}
	return nil
}

func (r *memSlotRepo) SetAvailability(id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[id].IsAvailable = available
	return nil
}

func (r *memSlotRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

func (r *memSlotRepo) CountByOwner(ownerID string) (int64, error) {
	slots, _ := r.ListByOwner(ownerID)
	return int64(len(slots)), nil
}

type memOwnerRepo struct {
	owners map[string]*models.Owner
}

func (r *memOwnerRepo) Create(owner *models.Owner) error {
	r.owners[owner.ID] = owner
	return nil
}

func (r *memOwnerRepo) GetByID(id string) (*models.Owner, error) {
	return r.owners[id], nil
}

func (r *memOwnerRepo) GetByUserID(userID string) (*models.Owner, error) {
	for _, o := range r.owners {
		if o.UserID == userID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOwnerRepo) UpdateProfile(id string, input models.OwnerApplication) error { return nil }

func (r *memOwnerRepo) UpdateStatus(id string, status models.OwnerStatus) error { return nil }

func (r *memOwnerRepo) ListPending() ([]models.Owner, error) { return nil, nil }

func (r *memOwnerRepo) CountByStatus(status models.OwnerStatus) (int64, error) { return 0, nil }

// stubBookingRepo only answers the active-booking counts the slot service
// asks for; any other call is a test bug.
type stubBookingRepo struct {
	bookingRepo.BookingRepository
	activePerSlot map[string]int64
}

func (r *stubBookingRepo) CountForSlot(slotID string, statuses []models.BookingStatus) (int64, error) {
	return r.activePerSlot[slotID], nil
}

func newSlotService(activePerSlot map[string]int64) (*DefaultSlotService, *memSlotRepo) {
	slots := newMemSlotRepo()
	owners := &memOwnerRepo{owners: map[string]*models.Owner{
		"owner-1": {ID: "owner-1", UserID: "owner-user", Status: models.OwnerApproved},
		"owner-2": {ID: "owner-2", UserID: "pending-owner-user", Status: models.OwnerPending},
	}}
	bookings := &stubBookingRepo{activePerSlot: activePerSlot}

	svc := &DefaultSlotService{
		Repo:        slots,
		Owners:      owners,
		Bookings:    bookings,
		Coordinator: &booking.DefaultAvailabilityCoordinator{Bookings: bookings, Slots: slots},
	}
	return svc, slots
}

func validSlotInput() models.SlotInput {
	return models.SlotInput{
		Name:         "Lot A",
		Address:      "1 Main St",
		City:         "Pune",
		VehicleType:  models.VehicleFourWheeler,
		SlotType:     models.SlotCovered,
		PricePerHour: 50,
	}
}

func TestCreateSlot(t *testing.T) {
	svc, _ := newSlotService(nil)
	ctx := context.Background()

	slot, err := svc.Create(ctx, "owner-user", validSlotInput())
	require.NoError(t, err)
	assert.Equal(t, "owner-1", slot.OwnerID)
	assert.True(t, slot.IsAvailable, "new slots start available")
}

func TestCreateSlotValidation(t *testing.T) {
	svc, _ := newSlotService(nil)
	ctx := context.Background()

	bad := validSlotInput()
	bad.VehicleType = "truck"
	_, err := svc.Create(ctx, "owner-user", bad)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	bad = validSlotInput()
	bad.PricePerHour = 0
	_, err = svc.Create(ctx, "owner-user", bad)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	bad = validSlotInput()
	bad.SlotType = "garage"
	_, err = svc.Create(ctx, "owner-user", bad)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestCreateSlotRequiresApprovedOwner(t *testing.T) {
	svc, _ := newSlotService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "pending-owner-user", validSlotInput())
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))

	_, err = svc.Create(ctx, "not-an-owner", validSlotInput())
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))
}

func TestUpdateSlotOwnership(t *testing.T) {
	svc, _ := newSlotService(nil)
	ctx := context.Background()

	slot, err := svc.Create(ctx, "owner-user", validSlotInput())
	require.NoError(t, err)

	price := 75.0
	updated, err := svc.Update(ctx, "owner-user", slot.ID, models.SlotUpdate{PricePerHour: &price})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.PricePerHour)

	_, err = svc.Update(ctx, "pending-owner-user", slot.ID, models.SlotUpdate{PricePerHour: &price})
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))
}

func TestDeleteSlotBlockedByActiveBookings(t *testing.T) {
	svc, slots := newSlotService(map[string]int64{})
	ctx := context.Background()

	slot, err := svc.Create(ctx, "owner-user", validSlotInput())
	require.NoError(t, err)

	// An active booking blocks deletion.
	svc.Bookings.(*stubBookingRepo).activePerSlot = map[string]int64{slot.ID: 1}
	err = svc.Delete(ctx, "owner-user", slot.ID)
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	got, err := slots.GetByID(slot.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "blocked delete must not remove the slot")

	// Once the bookings terminalize, deletion proceeds.
	svc.Bookings.(*stubBookingRepo).activePerSlot = map[string]int64{}
	require.NoError(t, svc.Delete(ctx, "owner-user", slot.ID))

	got, err = slots.GetByID(slot.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManualAvailabilityOverride(t *testing.T) {
	svc, slots := newSlotService(map[string]int64{})
	ctx := context.Background()

	slot, err := svc.Create(ctx, "owner-user", validSlotInput())
	require.NoError(t, err)

	updated, err := svc.SetAvailability(ctx, "owner-user", slot.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)

	// Overrides are refused while bookings hold the slot.
	svc.Bookings.(*stubBookingRepo).activePerSlot = map[string]int64{slot.ID: 2}
	_, err = svc.SetAvailability(ctx, "owner-user", slot.ID, true)
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	got, err := slots.GetByID(slot.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable, "refused override must not flip the flag")
}

func TestListAvailableFilters(t *testing.T) {
	svc, _ := newSlotService(nil)
	ctx := context.Background()

	a := validSlotInput()
	_, err := svc.Create(ctx, "owner-user", a)
	require.NoError(t, err)

	b := validSlotInput()
	b.Name = "Lot B"
	b.City = "Mumbai"
	b.VehicleType = models.VehicleTwoWheeler
	_, err = svc.Create(ctx, "owner-user", b)
	require.NoError(t, err)

	all, err := svc.ListAvailable(ctx, models.SlotFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pune, err := svc.ListAvailable(ctx, models.SlotFilter{City: "Pune"})
	require.NoError(t, err)
	require.Len(t, pune, 1)
	assert.Equal(t, "Lot A", pune[0].Name)

	_, err = svc.ListAvailable(ctx, models.SlotFilter{VehicleType: "boat"})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}
