package admin

import (
	"context"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	ownerRepo "parkwise/database/repository/owner"
	userRepo "parkwise/database/repository/user"
	"parkwise/models"
)

// AdminService exposes the system-wide dashboard aggregates.
type AdminService interface {
	SystemStats(ctx context.Context) (*models.SystemStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Owners   ownerRepo.OwnerRepository
	Bookings bookingRepo.BookingRepository
}

// SystemStats counts users, approved owners and paid bookings, and sums the
// revenue collected since the start of the current month.
func (s *DefaultAdminService) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, err
	}

	owners, err := s.Owners.CountByStatus(models.OwnerApproved)
	if err != nil {
		return nil, err
	}

	active, err := s.Bookings.CountByStatus(models.BookingPaid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, err := s.Bookings.RevenueSince(monthStart, nil)
	if err != nil {
		return nil, err
	}

	return &models.SystemStats{
		TotalUsers:     users,
		TotalOwners:    owners,
		ActiveBookings: active,
		MonthlyRevenue: revenue,
	}, nil
}
