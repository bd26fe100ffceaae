package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel enforces at most one like per (user, post) pair through the
// composite unique index; the storage layer reports a duplicate insert as
// the already-liked condition.
type LikeModel struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
