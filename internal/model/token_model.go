package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthTokenModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string     `gorm:"type:varchar(30);not null;index" json:"kind"`
	Token     string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}

func (t *AuthTokenModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
