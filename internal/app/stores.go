package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"postline/internal/model"
)

// Store interfaces are satisfied by the gorm repositories; tests swap in
// in-memory fakes.

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByID(id uuid.UUID) (*model.User, error)
	GetAuth(id uuid.UUID) (*model.UserAuth, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
	Delete(id uuid.UUID) error
}

type PostStore interface {
	Create(post *model.Post) error
	GetByID(id uuid.UUID) (*model.Post, error)
	GetByTitleAndAuthor(title string, authorID uuid.UUID) (*model.Post, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

type SubscriptionStore interface {
	Create(sub *model.Subscription, maxOutgoing int) error
	Get(authorID, subscriberID uuid.UUID) (*model.Subscription, error)
	ListBySubscriber(subscriberID uuid.UUID) ([]model.Subscription, error)
	Delete(authorID, subscriberID uuid.UUID) error
}

type NotificationStore interface {
	ListByUserID(userID uuid.UUID, limit int) ([]model.Notification, error)
}

type PostEventPublisher interface {
	Publish(ctx context.Context, event model.PostEvent) error
}

// TokenRevoker invalidates a user's outstanding session tokens. Tokens
// issued before the revocation mark stop authenticating.
type TokenRevoker interface {
	RevokeAll(ctx context.Context, userID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}
