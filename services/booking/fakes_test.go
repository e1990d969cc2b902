package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	"parkwise/models"
)

// In-memory fakes mirroring the repository contracts, including the
// conflict semantics of the transactional primitives.

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.ParkingSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.ParkingSlot)}
}

func (r *fakeSlotRepo) Create(slot *models.ParkingSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) GetByID(id string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) ListAvailable(filter models.SlotFilter) ([]models.ParkingSlot, error) {
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

func (r *fakeSlotRepo) ListByOwner(ownerID string) ([]models.ParkingSlot, error) {
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

func (r *fakeSlotRepo) UpdateAttributes(id string, update models.SlotUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return errors.New("slot not found")
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.PricePerHour != nil {
		s.PricePerHour = *update.PricePerHour
	}
	return nil
}

func (r *fakeSlotRepo) SetAvailability(id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return errors.New("slot not found")
	}
	s.IsAvailable = available
	return nil
}

func (r *fakeSlotRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) CountByOwner(ownerID string) (int64, error) {
	slots, _ := r.ListByOwner(ownerID)
	return int64(len(slots)), nil
}

type fakeOwnerRepo struct {
	mu     sync.Mutex
	owners map[string]*models.Owner
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[string]*models.Owner)}
}

func (r *fakeOwnerRepo) Create(owner *models.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *owner
	r.owners[owner.ID] = &cp
	return nil
}

func (r *fakeOwnerRepo) GetByID(id string) (*models.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOwnerRepo) GetByUserID(userID string) (*models.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.owners {
		if o.UserID == userID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOwnerRepo) UpdateProfile(id string, input models.OwnerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[id]
	if !ok {
		return errors.New("owner not found")
	}
	o.BusinessName = input.BusinessName
	o.Address = input.Address
	o.City = input.City
	o.Phone = input.Phone
	return nil
}

func (r *fakeOwnerRepo) UpdateStatus(id string, status models.OwnerStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[id]
	if !ok {
		return errors.New("owner not found")
	}
	o.Status = status
	if status == models.OwnerApproved {
		now := time.Now()
		o.ApprovedAt = &now
	}
	return nil
}

func (r *fakeOwnerRepo) ListPending() ([]models.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Owner
	for _, o := range r.owners {
		if o.Status == models.OwnerPending {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOwnerRepo) CountByStatus(status models.OwnerStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.owners {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	slots    *fakeSlotRepo
}

func newFakeBookingRepo(slots *fakeSlotRepo) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking), slots: slots}
}

func occupying(s models.BookingStatus) bool {
	for _, o := range models.OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListBySlotIDs(slotIDs []string, statuses []models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inSlots := make(map[string]bool, len(slotIDs))
	for _, id := range slotIDs {
		inSlots[id] = true
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if !inSlots[b.SlotID] {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if b.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusCAS(id string, from, to models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	if to == models.BookingApproved {
		now := time.Now()
		b.ApprovedAt = &now
	}
	return nil
}

func (r *fakeBookingRepo) MarkPaid(id, paymentIntentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingApproved {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = models.BookingPaid
	b.PaymentIntentID = paymentIntentID
	now := time.Now()
	b.PaidAt = &now
	return nil
}

func (r *fakeBookingRepo) CountForSlot(slotID string, statuses []models.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.SlotID != slotID {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) CountForUser(userID string, statuses []models.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) ApproveTransactionally(ctx context.Context, bookingID, slotID string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.SlotID == slotID && b.ID != bookingID && occupying(b.Status) && b.Overlaps(start, end) {
			return bookingRepo.ErrSlotConflict
		}
	}

	b, ok := r.bookings[bookingID]
	if !ok || b.Status != models.BookingPending {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = models.BookingApproved
	now := time.Now()
	b.ApprovedAt = &now
	return r.slots.SetAvailability(slotID, false)
}

func (r *fakeBookingRepo) FinalizeTransactionally(ctx context.Context, bookingID, slotID string, from, to models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to

	var remaining int64
	for _, other := range r.bookings {
		if other.SlotID == slotID && other.ID != bookingID && occupying(other.Status) {
			remaining++
		}
	}
	if remaining == 0 {
		return r.slots.SetAvailability(slotID, true)
	}
	return nil
}

func (r *fakeBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) CountDistinctOccupiedSlots(slotIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inSlots := make(map[string]bool, len(slotIDs))
	for _, id := range slotIDs {
		inSlots[id] = true
	}
	seen := make(map[string]bool)
	for _, b := range r.bookings {
		if inSlots[b.SlotID] && b.Status == models.BookingPaid {
			seen[b.SlotID] = true
		}
	}
	return int64(len(seen)), nil
}

func (r *fakeBookingRepo) RevenueSince(since time.Time, slotIDs []string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inSlots := make(map[string]bool, len(slotIDs))
	for _, id := range slotIDs {
		inSlots[id] = true
	}
	// Mirrors the Mongo aggregation: paid bookings only, matched on
	// created_at, with a nil slot filter meaning system-wide.
	var total float64
	for _, b := range r.bookings {
		if b.Status != models.BookingPaid {
			continue
		}
		if slotIDs != nil && !inSlots[b.SlotID] {
			continue
		}
		if !b.CreatedAt.Before(since) {
			total += b.TotalAmount
		}
	}
	return total, nil
}

type emittedNotification struct {
	UserID string
	Title  string
	Type   models.NotificationType
}

type fakeNotifier struct {
	mu      sync.Mutex
	emitted []emittedNotification
}

func (f *fakeNotifier) Emit(ctx context.Context, userID, title, message string, typ models.NotificationType) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emitted = append(f.emitted, emittedNotification{UserID: userID, Title: title, Type: typ})
	return &models.Notification{UserID: userID, Title: title, Message: message, Type: typ}, nil
}

func (f *fakeNotifier) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, id string) error {
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.emitted)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateStripeCustomerID(id, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.StripeCustomerID = customerID
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakePaymentProvider struct {
	failWith  error
	charges   int
	customers int
}

func (f *fakePaymentProvider) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.customers++
	return "cus_test_" + userID, nil
}

func (f *fakePaymentProvider) CreateCharge(ctx context.Context, customerID string, amount float64, currency, bookingID, userID string) (*models.PaymentCapture, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.charges++
	return &models.PaymentCapture{Reference: "pi_test_" + bookingID, ClientSecret: "cs_test"}, nil
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[string]time.Time)}
}

func (f *fakeScheduler) Schedule(ctx context.Context, bookingID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled[bookingID] = at
	return nil
}
