package userRepo

import "parkwise/models"

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateStripeCustomerID(id, customerID string) error
	Delete(id string) error
	Count() (int64, error)
}
