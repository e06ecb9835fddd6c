package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                     string     `gorm:"type:uuid;primary_key" json:"id"`
	Email                  string     `gorm:"uniqueIndex;not null" json:"email"`
	Password               string     `gorm:"not null" json:"-"`
	EmailVerified          bool       `gorm:"default:false" json:"email_verified"`
	HasCompletedOnboarding bool       `gorm:"default:false" json:"has_completed_onboarding"`
	DraftProfileID         *string    `gorm:"type:uuid" json:"draft_profile_id"`
	PublishedProfileID     *string    `gorm:"type:uuid" json:"published_profile_id"`
	Slug                   *string    `gorm:"uniqueIndex" json:"slug"`
	IsPublished            bool       `gorm:"default:false" json:"is_published"`
	PublishedAt            *time.Time `json:"published_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
