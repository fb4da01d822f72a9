package model

import "github.com/google/uuid"

// Subscription is a directed edge: subscriber follows author's posts.
// The composite primary key rules out duplicate edges.
type Subscription struct {
	AuthorUserID     uuid.UUID `gorm:"type:char(36);primaryKey" json:"author_user_id"`
	SubscriberUserID uuid.UUID `gorm:"type:char(36);primaryKey" json:"subscriber_user_id"`

	Author     *User `gorm:"foreignKey:AuthorUserID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
	Subscriber *User `gorm:"foreignKey:SubscriberUserID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}
