package entity

import "time"

type User struct {
	ID                     string     `json:"id"`
	Email                  string     `json:"email"`
	Password               string     `json:"-"`
	EmailVerified          bool       `json:"email_verified"`
	HasCompletedOnboarding bool       `json:"has_completed_onboarding"`
	DraftProfileID         *string    `json:"draft_profile_id"`
	PublishedProfileID     *string    `json:"published_profile_id"`
	Slug                   *string    `json:"slug"`
	IsPublished            bool       `json:"is_published"`
	PublishedAt            *time.Time `json:"published_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
