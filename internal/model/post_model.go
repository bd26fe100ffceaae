package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID            string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	Timestamp     time.Time `gorm:"not null;index" json:"timestamp"`
	OwnerID       string    `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	OwnerUsername string    `gorm:"type:varchar(50);not null" json:"owner_username"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
