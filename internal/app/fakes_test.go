package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"postline/internal/model"
	"postline/internal/repository"
)

type edgeKey struct {
	author     uuid.UUID
	subscriber uuid.UUID
}

// fakeStore is an in-memory stand-in for the gorm repositories. It mimics
// the datastore contract the services rely on: unique constraints surface
// as repository.ErrDuplicateKey, the subscription cap as
// repository.ErrSubscriptionLimit, and deleting a user cascades.
type fakeStore struct {
	users map[uuid.UUID]*model.User
	posts map[uuid.UUID]*model.Post
	subs  map[edgeKey]model.Subscription
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: map[uuid.UUID]*model.User{},
		posts: map[uuid.UUID]*model.Post{},
		subs:  map[edgeKey]model.Subscription{},
	}
}

func (f *fakeStore) Create(user *model.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return fmt.Errorf("create user failed: %w", repository.ErrDuplicateKey)
		}
	}
	if user.UUID == uuid.Nil {
		user.UUID = uuid.New()
	}
	copied := *user
	f.users[user.UUID] = &copied
	return nil
}

func (f *fakeStore) GetByUsername(username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByID(id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	copied.Posts = nil
	for _, post := range f.posts {
		if post.AuthorUserID == id {
			copied.Posts = append(copied.Posts, *post)
		}
	}
	return &copied, nil
}

func (f *fakeStore) GetAuth(id uuid.UUID) (*model.UserAuth, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &model.UserAuth{
		UUID:         user.UUID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}, nil
}

func (f *fakeStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	if username, ok := fields["username"].(string); ok {
		for otherID, other := range f.users {
			if otherID != id && other.Username == username {
				return fmt.Errorf("update user failed: %w", repository.ErrDuplicateKey)
			}
		}
		user.Username = username
	}
	if biography, ok := fields["biography"].(string); ok {
		user.Biography = &biography
	}
	return nil
}

func (f *fakeStore) UpdatePassword(id uuid.UUID, passwordHash string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeStore) Delete(id uuid.UUID) error {
	delete(f.users, id)
	for postID, post := range f.posts {
		if post.AuthorUserID == id {
			delete(f.posts, postID)
		}
	}
	for key := range f.subs {
		if key.author == id || key.subscriber == id {
			delete(f.subs, key)
		}
	}
	return nil
}

// fakePostStore exposes the post-facing view over the shared state.
type fakePostStore struct {
	store *fakeStore
}

func (f *fakePostStore) Create(post *model.Post) error {
	for _, existing := range f.store.posts {
		if existing.AuthorUserID == post.AuthorUserID && existing.Title == post.Title {
			return fmt.Errorf("create post failed: %w", repository.ErrDuplicateKey)
		}
	}
	if post.UUID == uuid.Nil {
		post.UUID = uuid.New()
	}
	copied := *post
	f.store.posts[post.UUID] = &copied
	return nil
}

func (f *fakePostStore) GetByID(id uuid.UUID) (*model.Post, error) {
	post, ok := f.store.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostStore) GetByTitleAndAuthor(title string, authorID uuid.UUID) (*model.Post, error) {
	for _, post := range f.store.posts {
		if post.AuthorUserID == authorID && post.Title == title {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	post, ok := f.store.posts[id]
	if !ok {
		return nil
	}
	if title, ok := fields["title"].(string); ok {
		for otherID, other := range f.store.posts {
			if otherID != id && other.AuthorUserID == post.AuthorUserID && other.Title == title {
				return fmt.Errorf("update post failed: %w", repository.ErrDuplicateKey)
			}
		}
		post.Title = title
	}
	if text, ok := fields["text"].(string); ok {
		post.Text = text
	}
	return nil
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
	delete(f.store.posts, id)
	return nil
}

// fakeSubscriptionStore enforces the cap and the duplicate-edge guard the
// way the real transaction does.
type fakeSubscriptionStore struct {
	store *fakeStore
}

func (f *fakeSubscriptionStore) Create(sub *model.Subscription, maxOutgoing int) error {
	outgoing := 0
	for key := range f.store.subs {
		if key.subscriber == sub.SubscriberUserID {
			outgoing++
		}
	}
	if outgoing >= maxOutgoing {
		return repository.ErrSubscriptionLimit
	}

	key := edgeKey{author: sub.AuthorUserID, subscriber: sub.SubscriberUserID}
	if _, exists := f.store.subs[key]; exists {
		return fmt.Errorf("create subscription failed: %w", repository.ErrDuplicateKey)
	}
	f.store.subs[key] = *sub
	return nil
}

func (f *fakeSubscriptionStore) Get(authorID, subscriberID uuid.UUID) (*model.Subscription, error) {
	sub, ok := f.store.subs[edgeKey{author: authorID, subscriber: subscriberID}]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (f *fakeSubscriptionStore) ListBySubscriber(subscriberID uuid.UUID) ([]model.Subscription, error) {
	var subs []model.Subscription
	for key, sub := range f.store.subs {
		if key.subscriber == subscriberID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (f *fakeSubscriptionStore) Delete(authorID, subscriberID uuid.UUID) error {
	delete(f.store.subs, edgeKey{author: authorID, subscriber: subscriberID})
	return nil
}

type fakePublisher struct {
	events []model.PostEvent
}

func (f *fakePublisher) Publish(_ context.Context, event model.PostEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeRevoker struct {
	marks map[string]time.Time
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{marks: map[string]time.Time{}}
}

func (f *fakeRevoker) RevokeAll(_ context.Context, userID string, _ time.Duration) error {
	f.marks[userID] = time.Now()
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	mark, ok := f.marks[userID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(mark), nil
}
