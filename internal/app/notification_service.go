package app

import (
	"github.com/google/uuid"

	"postline/internal/model"
)

// NotificationService reads the rows the notification worker writes.
type NotificationService struct {
	notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List(userID uuid.UUID, limit int) ([]model.Notification, error) {
	return s.notifications.ListByUserID(userID, limit)
}
