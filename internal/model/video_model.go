package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ProfileID string    `gorm:"type:uuid;not null;index" json:"profile_id"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
