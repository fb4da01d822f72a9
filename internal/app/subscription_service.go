package app

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"postline/internal/model"
	"postline/internal/repository"
)

// MaxOutgoingSubscriptions is the inclusive cardinality cap: the 100th
// subscribe succeeds, the 101st fails.
const MaxOutgoingSubscriptions = 100

// SubscriptionService owns the follow edges between users.
type SubscriptionService struct {
	users UserStore
	subs  SubscriptionStore
}

func NewSubscriptionService(users UserStore, subs SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{users: users, subs: subs}
}

// Subscribe adds an edge from the acting user to the named author. The
// duplicate pre-check is advisory; the composite primary key and the
// locked count inside the insert transaction are authoritative.
func (s *SubscriptionService) Subscribe(actingID uuid.UUID, targetUsername string) (*model.Subscription, error) {
	author, err := s.resolveTarget(actingID, targetUsername)
	if err != nil {
		return nil, err
	}

	existing, err := s.subs.Get(author.UUID, actingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubscriptionExists
	}

	sub := &model.Subscription{
		AuthorUserID:     author.UUID,
		SubscriberUserID: actingID,
	}
	if err := s.subs.Create(sub, MaxOutgoingSubscriptions); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubscriptionLimit):
			return nil, ErrSubscriptionLimit
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrSubscriptionExists
		}
		return nil, err
	}
	return sub, nil
}

// Unsubscribe removes the edge if it exists. Removing an absent edge is
// still a success.
func (s *SubscriptionService) Unsubscribe(actingID uuid.UUID, targetUsername string) error {
	author, err := s.resolveTarget(actingID, targetUsername)
	if err != nil {
		return err
	}
	return s.subs.Delete(author.UUID, actingID)
}

func (s *SubscriptionService) List(subscriberID uuid.UUID) ([]model.Subscription, error) {
	return s.subs.ListBySubscriber(subscriberID)
}

func (s *SubscriptionService) resolveTarget(actingID uuid.UUID, targetUsername string) (*model.User, error) {
	targetUsername = strings.TrimSpace(targetUsername)
	if targetUsername == "" {
		return nil, ErrInvalidInput
	}

	author, err := s.users.GetByUsername(targetUsername)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	if author.UUID == actingID {
		return nil, ErrSelfSubscription
	}
	return author, nil
}
