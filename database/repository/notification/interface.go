package notificationRepo

import "parkwise/models"

// NotificationRepository defines persistence for the append-only
// notification store. The read flag is last-write-wins by design.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string) ([]models.Notification, error)
	MarkRead(id string) error
}
