package ownerRepo

import "parkwise/models"

// OwnerRepository defines persistence operations for owner profiles.
type OwnerRepository interface {
	Create(owner *models.Owner) error
	GetByID(id string) (*models.Owner, error)
	GetByUserID(userID string) (*models.Owner, error)
	UpdateProfile(id string, input models.OwnerApplication) error
	UpdateStatus(id string, status models.OwnerStatus) error
	ListPending() ([]models.Owner, error)
	CountByStatus(status models.OwnerStatus) (int64, error)
}
