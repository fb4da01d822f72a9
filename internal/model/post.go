package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is keyed by (uuid, author_user_id). The unique index on
// (author_user_id, title) enforces per-author title uniqueness at the
// datastore level; service-level lookups are only a fast path.
type Post struct {
	UUID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"uuid"`
	AuthorUserID uuid.UUID `gorm:"type:char(36);primaryKey;uniqueIndex:uq_posts_author_title" json:"author_user_id"`
	Title        string    `gorm:"size:100;not null;uniqueIndex:uq_posts_author_title" json:"title"`
	Text         string    `gorm:"size:1000;not null" json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}

type PostRead struct {
	UUID         uuid.UUID `json:"uuid"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	AuthorUserID uuid.UUID `json:"author_user_id"`
}

func (p *Post) Read() PostRead {
	return PostRead{
		UUID:         p.UUID,
		Title:        p.Title,
		Text:         p.Text,
		AuthorUserID: p.AuthorUserID,
	}
}

// PostEvent is the payload published to the broker when a post is created.
type PostEvent struct {
	PostID       uuid.UUID `json:"post_id"`
	AuthorUserID uuid.UUID `json:"author_user_id"`
	Title        string    `json:"title"`
}
