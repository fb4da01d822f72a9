package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification tells a subscriber that an author they follow published a
// post. Rows are written asynchronously by the notification worker.
type Notification struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;index" json:"user_id"`
	PostID       uuid.UUID `gorm:"type:char(36);not null" json:"post_id"`
	AuthorUserID uuid.UUID `gorm:"type:char(36);not null" json:"author_user_id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	CreatedAt    time.Time `json:"created_at"`

	Recipient *User `gorm:"foreignKey:UserID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}
