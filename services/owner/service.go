package owner

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	ownerRepo "parkwise/database/repository/owner"
	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"
	"parkwise/services/notification"
	"parkwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OwnerService manages owner applications and the admin decisions on them.
type OwnerService interface {
	Apply(ctx context.Context, userID string, input models.OwnerApplication) (*models.Owner, error)
	GetByUserID(ctx context.Context, userID string) (*models.Owner, error)
	ListPending(ctx context.Context) ([]models.Owner, error)
	Decide(ctx context.Context, ownerID string, status models.OwnerStatus) (*models.Owner, error)
	Stats(ctx context.Context, ownerUserID string) (*models.OwnerStats, error)
}

// DefaultOwnerService is the production implementation.
type DefaultOwnerService struct {
	Repo         ownerRepo.OwnerRepository
	Slots        slotRepo.SlotRepository
	Bookings     bookingRepo.BookingRepository
	Notification notification.NotificationService
}

// Apply files an owner application for the user, or completes the
// placeholder profile created at owner registration.
func (s *DefaultOwnerService) Apply(ctx context.Context, userID string, input models.OwnerApplication) (*models.Owner, error) {
	input.BusinessName = strings.TrimSpace(input.BusinessName)
	if input.BusinessName == "" || input.Address == "" || input.City == "" || input.Phone == "" {
		return nil, utils.NewValidationError("business name, address, city and phone are required")
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("owner lookup failed: %w", err)
	}
	if existing != nil && existing.Status != models.OwnerPending {
		return nil, utils.NewConflictError("an owner application already exists for this user")
	}

	owner := existing
	if owner == nil {
		owner = &models.Owner{
			ID:           uuid.New().String(),
			UserID:       userID,
			BusinessName: input.BusinessName,
			Address:      input.Address,
			City:         input.City,
			Phone:        input.Phone,
			Status:       models.OwnerPending,
			CreatedAt:    time.Now(),
		}
		if err := s.Repo.Create(owner); err != nil {
			return nil, fmt.Errorf("failed to create owner application: %w", err)
		}
	} else {
		// Placeholder profile from owner registration: fill in the details.
		owner.BusinessName = input.BusinessName
		owner.Address = input.Address
		owner.City = input.City
		owner.Phone = input.Phone
		if err := s.Repo.UpdateProfile(owner.ID, input); err != nil {
			return nil, fmt.Errorf("failed to update owner application: %w", err)
		}
	}

	s.notify(ctx, userID, "Owner Application Submitted",
		"Your application to become a parking owner has been submitted for review.",
		models.NotificationInfo)

	return owner, nil
}

// GetByUserID returns the owner profile attached to a user account.
func (s *DefaultOwnerService) GetByUserID(ctx context.Context, userID string) (*models.Owner, error) {
	owner, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.NewNotFoundError("owner profile not found")
	}
	return owner, nil
}

// ListPending returns applications awaiting an admin decision.
func (s *DefaultOwnerService) ListPending(ctx context.Context) ([]models.Owner, error) {
	return s.Repo.ListPending()
}

// Decide approves or rejects a pending owner application and notifies the
// applicant.
func (s *DefaultOwnerService) Decide(ctx context.Context, ownerID string, status models.OwnerStatus) (*models.Owner, error) {
	if status != models.OwnerApproved && status != models.OwnerRejected {
		return nil, utils.NewValidationError("status must be approved or rejected")
	}

	owner, err := s.Repo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.NewNotFoundError("owner not found")
	}
	if owner.Status != models.OwnerPending {
		return nil, utils.NewStateError("owner application has already been decided")
	}

	if err := s.Repo.UpdateStatus(ownerID, status); err != nil {
		return nil, fmt.Errorf("failed to update owner status: %w", err)
	}

	typ := models.NotificationSuccess
	if status == models.OwnerRejected {
		typ = models.NotificationError
	}
	s.notify(ctx, owner.UserID,
		fmt.Sprintf("Owner Application %s", status),
		fmt.Sprintf("Your application to become a parking owner has been %s.", status),
		typ)

	return s.Repo.GetByID(ownerID)
}

// Stats aggregates the owner dashboard figures.
func (s *DefaultOwnerService) Stats(ctx context.Context, ownerUserID string) (*models.OwnerStats, error) {
	owner, err := s.GetByUserID(ctx, ownerUserID)
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

	occupied, err := s.Bookings.CountDistinctOccupiedSlots(slotIDs)
	if err != nil {
		return nil, err
	}

	pending, err := s.countPending(slotIDs)
	if err != nil {
		return nil, err
	}

	monthStart := startOfMonth(time.Now())
	revenue, err := s.Bookings.RevenueSince(monthStart, slotIDs)
	if err != nil {
		return nil, err
	}

	return &models.OwnerStats{
		TotalSlots:      int64(len(slots)),
		OccupiedSlots:   occupied,
		PendingRequests: pending,
		MonthlyRevenue:  revenue,
	}, nil
}

func (s *DefaultOwnerService) countPending(slotIDs []string) (int64, error) {
	var total int64
	for _, id := range slotIDs {
		n, err := s.Bookings.CountForSlot(id, []models.BookingStatus{models.BookingPending})
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (s *DefaultOwnerService) notify(ctx context.Context, userID, title, message string, typ models.NotificationType) {
	if s.Notification == nil {
		return
	}
	if _, err := s.Notification.Emit(ctx, userID, title, message, typ); err != nil {
		zap.L().Warn("Failed to emit owner notification", zap.String("userID", userID), zap.Error(err))
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
