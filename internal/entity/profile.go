package entity

import "time"

// Profile is a snapshot of an athlete's recruitment data. Each user owns
// at most two: the continuously edited draft and the published copy. All
// fields are optional free text; empty string means absent.
type Profile struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	GraduationYear    string    `json:"graduation_year"`
	HighSchool        string    `json:"high_school"`
	Club              string    `json:"club"`
	OtherTeams        string    `json:"other_teams"`
	Residence         string    `json:"residence"`
	Height            string    `json:"height"`
	PrimaryPosition   string    `json:"primary_position"`
	SecondaryPosition string    `json:"secondary_position"`
	DominantHand      string    `json:"dominant_hand"`
	StandingTouch     string    `json:"standing_touch"`
	SpikeTouch        string    `json:"spike_touch"`
	BlockTouch        string    `json:"block_touch"`
	GPA               string    `json:"gpa"`
	AreaOfStudy       string    `json:"area_of_study"`
	CareerGoals       string    `json:"career_goals"`
	ProfileImageURL   string    `json:"profile_image_url"`
	Videos            []Video   `json:"videos,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Positions accepted for primary/secondary position fields.
var PositionOptions = []string{
	"Setter",
	"Outside Hitter",
	"Opposite / Right Side",
	"Middle Blocker",
	"Libero",
	"Defensive Specialist",
}

func IsValidPosition(position string) bool {
	for _, p := range PositionOptions {
		if p == position {
			return true
		}
	}
	return false
}
