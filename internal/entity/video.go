package entity

import "time"

// Video is a YouTube highlight reel attached to one profile snapshot.
// URL is always stored in canonical watch form; Order is the 0-based
// position within the snapshot.
type Video struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxVideosPerProfile caps highlight videos on a single profile.
const MaxVideosPerProfile = 10
