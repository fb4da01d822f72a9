package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postline/internal/model"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateBatch(notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := r.db.Create(&notifications).Error; err != nil {
		return fmt.Errorf("create notifications failed: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUserID(userID uuid.UUID, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var notifications []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications failed: %w", err)
	}
	return notifications, nil
}
