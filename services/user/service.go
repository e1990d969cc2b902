package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	ownerRepo "parkwise/database/repository/owner"
	slotRepo "parkwise/database/repository/slot"
	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// UserService handles account registration, authentication and lookup.
type UserService interface {
	Register(ctx context.Context, input models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Owners   ownerRepo.OwnerRepository
	Slots    slotRepo.SlotRepository
	Bookings bookingRepo.BookingRepository
}

// Register creates an account. Registering with the owner role also creates
// a placeholder owner profile pending admin approval.
func (s *DefaultUserService) Register(ctx context.Context, input models.UserRegistration) (*models.AuthResponse, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if input.Username == "" || input.Email == "" {
		return nil, utils.NewValidationError("username and email are required")
	}
	if len(input.Password) < 6 {
		return nil, utils.NewValidationError("password must be at least 6 characters")
	}
	if input.Role == "" {
		input.Role = models.RoleUser
	}
	if input.Role != models.RoleUser && input.Role != models.RoleOwner {
		return nil, utils.NewValidationError("role must be user or owner")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("registration lookup failed: %w", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if input.Role == models.RoleOwner {
		profile := &models.Owner{
			ID:           uuid.New().String(),
			UserID:       u.ID,
			BusinessName: fmt.Sprintf("%s's Parking Business", u.Username),
			Status:       models.OwnerPending,
			CreatedAt:    time.Now(),
		}
		if err := s.Owners.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create owner profile: %w", err)
		}
	}

	return s.issueToken(u)
}

// Authenticate verifies credentials and issues a token. Invalid email and
// invalid password are indistinguishable to the caller.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication lookup failed: %w", err)
	}
	if u == nil {
		return nil, utils.NewAuthorizationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAuthorizationError("invalid credentials")
	}

	return s.issueToken(u)
}

// GetByID fetches a user account.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return u, nil
}

// CreateAdmin creates an account with the admin role. Only reachable through
// the admin surface.
func (s *DefaultUserService) CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || len(password) < 6 {
		return nil, utils.NewValidationError("username, email and a password of at least 6 characters are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("admin lookup failed: %w", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// Delete removes an account. Accounts referenced by active bookings, or
// owning slots with active bookings, are rejected rather than cascaded.
func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.NewNotFoundError("user not found")
	}

	active, err := s.Bookings.CountForUser(id, models.ActiveStatuses)
	if err != nil {
		return err
	}
	if active > 0 {
		return utils.NewConflictError("user has active bookings")
	}

	if profile, err := s.Owners.GetByUserID(id); err != nil {
		return err
	} else if profile != nil {
		slots, err := s.Slots.ListByOwner(profile.ID)
		if err != nil {
			return err
		}
		for _, slot := range slots {
			n, err := s.Bookings.CountForSlot(slot.ID, models.ActiveStatuses)
			if err != nil {
				return err
			}
			if n > 0 {
				return utils.NewConflictError("owner has slots with active bookings")
			}
		}
	}

	return s.Repo.Delete(id)
}

func (s *DefaultUserService) issueToken(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, string(u.Role), tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: u.Public()}, nil
}
