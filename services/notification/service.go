package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "parkwise/database/repository/notification"
	"parkwise/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService writes durable notifications and pushes them to any
// live listener. The durable write is the contract; the push is at-most-once.
type NotificationService interface {
	Emit(ctx context.Context, userID, title, message string, typ models.NotificationType) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
	Hub  *Hub
}

// Emit stores the notification and pushes it best-effort. A missing hub or a
// dead connection never fails the emit.
func (s *DefaultNotificationService) Emit(ctx context.Context, userID, title, message string, typ models.NotificationType) (*models.Notification, error) {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Create(n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}

	if s.Hub != nil {
		s.Hub.Publish(userID, n)
	} else {
		zap.L().Debug("No notification hub configured, skipping push", zap.String("userID", userID))
	}

	return n, nil
}

// ListByUser returns a user's notifications, newest first.
func (s *DefaultNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// MarkRead marks one notification read. Last write wins.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(id)
}
