package app

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(store *fakeStore, publisher PostEventPublisher) *PostService {
	return NewPostService(&fakePostStore{store: store}, publisher)
}

func TestCreatePost(t *testing.T) {
	store := newFakeStore()
	publisher := &fakePublisher{}
	svc := newPostService(store, publisher)
	authorID := uuid.New()

	post, err := svc.Create(context.Background(), authorID, "first post", "hello world")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.UUID)
	assert.Equal(t, authorID, post.AuthorUserID)
	assert.Equal(t, "first post", post.Title)

	// The created post is announced for notification fan-out.
	require.Len(t, publisher.events, 1)
	assert.Equal(t, post.UUID, publisher.events[0].PostID)
	assert.Equal(t, authorID, publisher.events[0].AuthorUserID)
}

func TestCreatePostDuplicateTitleSameAuthor(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, "my title", "one")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), authorID, "my title", "two")
	assert.ErrorIs(t, err, ErrPostTitleExists)
}

func TestCreatePostSameTitleDifferentAuthors(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)

	_, err := svc.Create(context.Background(), uuid.New(), "shared title", "one")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), uuid.New(), "shared title", "two")
	assert.NoError(t, err)
}

func TestCreatePostValidation(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)
	authorID := uuid.New()

	tests := []struct {
		name  string
		title string
		text  string
	}{
		{name: "empty title", title: "", text: "body"},
		{name: "title too long", title: strings.Repeat("t", 101), text: "body"},
		{name: "empty text", title: "title", text: ""},
		{name: "text too long", title: "title", text: strings.Repeat("x", 1001)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), authorID, tt.title, tt.text)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPatchPostAuthorOnly(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)
	authorID := uuid.New()

	post, err := svc.Create(context.Background(), authorID, "title", "original text")
	require.NoError(t, err)

	newText := "updated text"
	_, err = svc.Patch(uuid.New(), post.UUID, PostPatch{Text: &newText})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Patch(authorID, post.UUID, PostPatch{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, "updated text", updated.Text)
	// Title not in the payload keeps its prior value.
	assert.Equal(t, "title", updated.Title)
}

func TestPatchPostTitleConflict(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)
	authorID := uuid.New()

	_, err := svc.Create(context.Background(), authorID, "taken", "one")
	require.NoError(t, err)
	post, err := svc.Create(context.Background(), authorID, "free", "two")
	require.NoError(t, err)

	taken := "taken"
	_, err = svc.Patch(authorID, post.UUID, PostPatch{Title: &taken})
	assert.ErrorIs(t, err, ErrPostTitleExists)
}

func TestDeletePostAuthorOnly(t *testing.T) {
	svc := newPostService(newFakeStore(), nil)
	authorID := uuid.New()

	post, err := svc.Create(context.Background(), authorID, "title", "text")
	require.NoError(t, err)

	err = svc.Delete(uuid.New(), post.UUID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(authorID, post.UUID))
	_, err = svc.Get(post.UUID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
