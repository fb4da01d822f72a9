package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"postline/internal/model"
	"postline/internal/repository"
)

const (
	maxPostTitleLength = 100
	maxPostTextLength  = 1000
)

// PostService owns the post records. Every mutation checks authorship
// before touching the datastore.
type PostService struct {
	posts     PostStore
	publisher PostEventPublisher
}

type PostPatch struct {
	Title *string
	Text  *string
}

func NewPostService(posts PostStore, publisher PostEventPublisher) *PostService {
	return &PostService{posts: posts, publisher: publisher}
}

// Create enforces per-author title uniqueness. Two different authors may
// reuse the same title.
func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, title, text string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxPostTitleLength {
		return nil, ErrInvalidInput
	}
	if text == "" || len(text) > maxPostTextLength {
		return nil, ErrInvalidInput
	}

	existing, err := s.posts.GetByTitleAndAuthor(title, authorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPostTitleExists
	}

	post := &model.Post{
		AuthorUserID: authorID,
		Title:        title,
		Text:         text,
	}
	if err := s.posts.Create(post); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPostTitleExists
		}
		return nil, err
	}

	if s.publisher != nil {
		event := model.PostEvent{
			PostID:       post.UUID,
			AuthorUserID: post.AuthorUserID,
			Title:        post.Title,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Notification fan-out is best effort; the post is committed.
			log.Printf("publish post event failed: %v", err)
		}
	}
	return post, nil
}

func (s *PostService) Get(postID uuid.UUID) (*model.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Patch applies only the supplied fields and only for the post's author.
func (s *PostService) Patch(actingID, postID uuid.UUID, patch PostPatch) (*model.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorUserID != actingID {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" || len(title) > maxPostTitleLength {
			return nil, ErrInvalidInput
		}
		fields["title"] = title
	}
	if patch.Text != nil {
		if *patch.Text == "" || len(*patch.Text) > maxPostTextLength {
			return nil, ErrInvalidInput
		}
		fields["text"] = *patch.Text
	}

	if err := s.posts.UpdateFields(postID, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPostTitleExists
		}
		return nil, err
	}
	return s.Get(postID)
}

func (s *PostService) Delete(actingID, postID uuid.UUID) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.AuthorUserID != actingID {
		return ErrForbidden
	}
	return s.posts.Delete(postID)
}
