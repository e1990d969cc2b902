package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkwise/config"
	bookingRepo "parkwise/database/repository/booking"
	ownerRepo "parkwise/database/repository/owner"
	slotRepo "parkwise/database/repository/slot"
	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/services/notification"
	"parkwise/services/payment"
	"parkwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// transitions is the authoritative booking state machine. A transition absent
// from this table is invalid regardless of who requests it.
var transitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.BookingPending:  {models.BookingApproved: true, models.BookingRejected: true},
	models.BookingApproved: {models.BookingPaid: true, models.BookingCancelled: true},
	models.BookingPaid:     {models.BookingCompleted: true, models.BookingCancelled: true},
}

func canTransition(from, to models.BookingStatus) bool {
	return transitions[from][to]
}

// ExpiryScheduler enqueues a deferred expiry check for a pending booking.
// The production implementation lives in the cron package.
type ExpiryScheduler interface {
	Schedule(ctx context.Context, bookingID string, at time.Time) error
}

// BookingService drives the booking lifecycle: request, owner decision,
// payment capture and finalization.
type BookingService interface {
	Request(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListForOwner(ctx context.Context, ownerUserID string, onlyPending bool) ([]models.Booking, error)
	Decide(ctx context.Context, ownerUserID, bookingID string, decision models.BookingStatus) (*models.Booking, error)
	Finalize(ctx context.Context, ownerUserID, bookingID string, outcome models.BookingStatus) (*models.Booking, error)
	CapturePayment(ctx context.Context, userID, bookingID string) (*models.PaymentCapture, error)
	ExpirePending(ctx context.Context, bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Slots        slotRepo.SlotRepository
	Owners       ownerRepo.OwnerRepository
	Users        userRepo.UserRepository
	Coordinator  AvailabilityCoordinator
	Payments     payment.Provider
	Notification notification.NotificationService
	Expiry       ExpiryScheduler
}

// Request validates and files a pending booking. The slot stays available
// until an owner approves; multiple pending requests may target the same
// window and the approval transaction picks the single winner.
func (s *DefaultBookingService) Request(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	if req.SlotID == "" {
		return nil, utils.NewValidationError("slot_id is required")
	}
	if req.Duration < 1 {
		return nil, utils.NewValidationError("duration must be at least one hour")
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, utils.NewValidationError("end_time must be after start_time")
	}
	if req.EndTime.Sub(req.StartTime) != time.Duration(req.Duration)*time.Hour {
		return nil, utils.NewValidationError("duration does not match the booking window")
	}
	if !req.StartTime.After(time.Now()) {
		return nil, utils.NewValidationError("start_time must be in the future")
	}

	slot, err := s.Slots.GetByID(req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, utils.NewNotFoundError("parking slot not found")
	}
	if !slot.IsAvailable {
		return nil, utils.NewValidationError("parking slot is not available")
	}

	quote := ComputeQuote(slot.PricePerHour, req.Duration)

	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		SlotID:      slot.ID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    req.Duration,
		TotalAmount: quote.Total,
		Status:      models.BookingPending,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.notify(ctx, userID, "Booking Created",
		fmt.Sprintf("Your booking for %s is awaiting owner approval.", slot.Name),
		models.NotificationInfo)

	if s.Expiry != nil {
		if err := s.Expiry.Schedule(ctx, booking.ID, booking.StartTime); err != nil {
			zap.L().Warn("Failed to schedule booking expiry",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

// GetByID fetches one booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("booking not found")
	}
	return booking, nil
}

// ListForUser returns the user's bookings, newest first.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}

// ListForOwner returns bookings against the owner's slots, optionally only
// the pending requests awaiting a decision.
func (s *DefaultBookingService) ListForOwner(ctx context.Context, ownerUserID string, onlyPending bool) ([]models.Booking, error) {
	owner, err := s.ownerForUser(ownerUserID)
	if err != nil {
		return nil, err
	}

	slots, err := s.Slots.ListByOwner(owner.ID)
	if err != nil {
		return nil, err
	}
	slotIDs := make([]string, 0, len(slots))
	for _, slot := range slots {
		slotIDs = append(slotIDs, slot.ID)
	}

	var statuses []models.BookingStatus
	if onlyPending {
		statuses = []models.BookingStatus{models.BookingPending}
	}
	return s.Repo.ListBySlotIDs(slotIDs, statuses)
}

// Decide applies the owner's verdict on a pending booking. Approval runs the
// availability reservation; losing the reservation race leaves the booking
// pending so the owner can retry with a different window.
func (s *DefaultBookingService) Decide(ctx context.Context, ownerUserID, bookingID string, decision models.BookingStatus) (*models.Booking, error) {
	if decision != models.BookingApproved && decision != models.BookingRejected {
		return nil, utils.NewValidationError("decision must be approved or rejected")
	}

	booking, err := s.authorizedBooking(ownerUserID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, utils.NewStateError(fmt.Sprintf("booking is %s, only pending bookings can be decided", booking.Status))
	}

	if decision == models.BookingApproved {
		if err := s.Coordinator.CheckAndReserve(ctx, booking); err != nil {
			return nil, err
		}
	} else {
		if err := s.Repo.UpdateStatusCAS(booking.ID, models.BookingPending, models.BookingRejected); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return nil, utils.NewStateError("booking is no longer pending")
			}
			return nil, err
		}
	}

	typ := models.NotificationSuccess
	if decision == models.BookingRejected {
		typ = models.NotificationWarning
	}
	s.notify(ctx, booking.UserID,
		fmt.Sprintf("Booking %s", decision),
		fmt.Sprintf("Your parking booking has been %s.", decision),
		typ)

	return s.GetByID(ctx, bookingID)
}

// Finalize moves an approved or paid booking to completed or cancelled and
// releases the slot when nothing else occupies it.
func (s *DefaultBookingService) Finalize(ctx context.Context, ownerUserID, bookingID string, outcome models.BookingStatus) (*models.Booking, error) {
	if outcome != models.BookingCompleted && outcome != models.BookingCancelled {
		return nil, utils.NewValidationError("outcome must be completed or cancelled")
	}

	booking, err := s.authorizedBooking(ownerUserID, bookingID)
	if err != nil {
		return nil, err
	}
	if !canTransition(booking.Status, outcome) {
		return nil, utils.NewStateError(fmt.Sprintf("cannot move a %s booking to %s", booking.Status, outcome))
	}

	if err := s.Coordinator.Release(ctx, booking, outcome); err != nil {
		return nil, err
	}

	typ := models.NotificationSuccess
	if outcome == models.BookingCancelled {
		typ = models.NotificationWarning
	}
	s.notify(ctx, booking.UserID,
		fmt.Sprintf("Booking %s", outcome),
		fmt.Sprintf("Your parking booking has been %s.", outcome),
		typ)

	return s.GetByID(ctx, bookingID)
}

// CapturePayment charges an approved booking and marks it paid. A provider
// failure leaves the booking approved so the user can retry.
func (s *DefaultBookingService) CapturePayment(ctx context.Context, userID, bookingID string) (*models.PaymentCapture, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, utils.NewAuthorizationError("not permitted")
	}
	if booking.Status != models.BookingApproved {
		return nil, utils.NewStateError(fmt.Sprintf("booking is %s, only approved bookings can be paid", booking.Status))
	}

	customerID, err := s.ensureCustomer(ctx, booking.UserID)
	if err != nil {
		return nil, utils.NewPaymentError("payment could not be processed", err)
	}

	capture, err := s.Payments.CreateCharge(ctx, customerID, booking.TotalAmount, config.AppConfig.Currency, booking.ID, booking.UserID)
	if err != nil {
		return nil, utils.NewPaymentError("payment could not be processed", err)
	}

	if err := s.Repo.MarkPaid(booking.ID, capture.Reference); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			return nil, utils.NewStateError("booking is no longer approved")
		}
		return nil, err
	}

	return capture, nil
}

// ExpirePending rejects a booking that is still pending when its start time
// arrives. Already-decided bookings are left untouched.
func (s *DefaultBookingService) ExpirePending(ctx context.Context, bookingID string) error {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil || booking.Status != models.BookingPending {
		return nil
	}

	if err := s.Repo.UpdateStatusCAS(booking.ID, models.BookingPending, models.BookingRejected); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			return nil
		}
		return err
	}

	s.notify(ctx, booking.UserID, "Booking Expired",
		"Your parking booking was not approved before its start time and has expired.",
		models.NotificationWarning)

	zap.L().Info("Expired pending booking", zap.String("bookingID", booking.ID))
	return nil
}

// ensureCustomer returns the user's payment provider customer reference,
// creating and storing one on first payment.
func (s *DefaultBookingService) ensureCustomer(ctx context.Context, userID string) (string, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("user %s not found", userID)
	}
	if u.StripeCustomerID != "" {
		return u.StripeCustomerID, nil
	}

	customerID, err := s.Payments.CreateCustomer(ctx, u.Email, u.ID)
	if err != nil {
		return "", err
	}
	if err := s.Users.UpdateStripeCustomerID(u.ID, customerID); err != nil {
		return "", err
	}
	return customerID, nil
}

// authorizedBooking loads the booking and verifies the acting user owns the
// slot it targets.
func (s *DefaultBookingService) authorizedBooking(ownerUserID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("booking not found")
	}

	owner, err := s.ownerForUser(ownerUserID)
	if err != nil {
		return nil, err
	}
	slot, err := s.Slots.GetByID(booking.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil || slot.OwnerID != owner.ID {
		return nil, utils.NewAuthorizationError("not permitted")
	}
	return booking, nil
}

func (s *DefaultBookingService) ownerForUser(userID string) (*models.Owner, error) {
	owner, err := s.Owners.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.NewAuthorizationError("not permitted")
	}
	return owner, nil
}

func (s *DefaultBookingService) notify(ctx context.Context, userID, title, message string, typ models.NotificationType) {
	if s.Notification == nil {
		return
	}
	if _, err := s.Notification.Emit(ctx, userID, title, message, typ); err != nil {
		zap.L().Warn("Failed to emit booking notification", zap.String("userID", userID), zap.Error(err))
	}
}
