package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"postline/internal/model"
)

// ErrSubscriptionLimit is returned when a subscriber already holds the
// maximum number of outgoing edges. Raised inside the insert transaction
// so concurrent subscribes near the limit cannot both pass the count.
var ErrSubscriptionLimit = errors.New("subscription limit reached")

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts the edge after counting the subscriber's outgoing edges
// under a FOR UPDATE lock. The count and the insert share one transaction;
// the composite primary key guards against duplicate edges independently.
func (r *SubscriptionRepository) Create(sub *model.Subscription, maxOutgoing int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Subscription{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("subscriber_user_id = ?", sub.SubscriberUserID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("count subscriptions failed: %w", err)
		}
		if count >= int64(maxOutgoing) {
			return ErrSubscriptionLimit
		}

		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("create subscription failed: %w", translateErr(err))
		}
		return nil
	})
}

func (r *SubscriptionRepository) Get(authorID, subscriberID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("author_user_id = ? AND subscriber_user_id = ?", authorID, subscriberID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query subscription failed: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListBySubscriber(subscriberID uuid.UUID) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("subscriber_user_id = ?", subscriberID).Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions failed: %w", err)
	}
	return subs, nil
}

// ListByAuthor returns the incoming edges, i.e. everyone subscribed to
// the given author. Used by the notification worker.
func (r *SubscriptionRepository) ListByAuthor(authorID uuid.UUID) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("author_user_id = ?", authorID).Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscribers failed: %w", err)
	}
	return subs, nil
}

// Delete removes the edge if present. Deleting an absent edge is not an
// error.
func (r *SubscriptionRepository) Delete(authorID, subscriberID uuid.UUID) error {
	err := r.db.Where("author_user_id = ? AND subscriber_user_id = ?", authorID, subscriberID).
		Delete(&model.Subscription{}).Error
	if err != nil {
		return fmt.Errorf("delete subscription failed: %w", err)
	}
	return nil
}
