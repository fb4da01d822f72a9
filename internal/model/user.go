package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UUID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"uuid"`
	Username     string    `gorm:"size:55;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Biography    *string   `gorm:"size:200" json:"biography,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:AuthorUserID;references:UUID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	return nil
}

// UserRead is the external shape of a user. The password hash never
// leaves the service layer.
type UserRead struct {
	UUID      uuid.UUID  `json:"uuid"`
	Username  string     `json:"username"`
	Biography *string    `json:"biography"`
	Posts     []PostRead `json:"posts"`
}

// UserAuth is the minimal projection used by the auth middleware and the
// login path. Not exposed over HTTP.
type UserAuth struct {
	UUID         uuid.UUID
	Username     string
	PasswordHash string
}

func (u *User) Read() UserRead {
	posts := make([]PostRead, 0, len(u.Posts))
	for _, p := range u.Posts {
		posts = append(posts, p.Read())
	}
	return UserRead{
		UUID:      u.UUID,
		Username:  u.Username,
		Biography: u.Biography,
		Posts:     posts,
	}
}
