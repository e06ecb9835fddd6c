package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID                string       `gorm:"type:uuid;primary_key" json:"id"`
	FirstName         string       `gorm:"type:varchar(100)" json:"first_name"`
	LastName          string       `gorm:"type:varchar(100)" json:"last_name"`
	Email             string       `gorm:"type:varchar(255)" json:"email"`
	Phone             string       `gorm:"type:varchar(50)" json:"phone"`
	GraduationYear    string       `gorm:"type:varchar(4)" json:"graduation_year"`
	HighSchool        string       `gorm:"type:varchar(255)" json:"high_school"`
	Club              string       `gorm:"type:varchar(255)" json:"club"`
	OtherTeams        string       `gorm:"type:varchar(255)" json:"other_teams"`
	Residence         string       `gorm:"type:varchar(255)" json:"residence"`
	Height            string       `gorm:"type:varchar(20)" json:"height"`
	PrimaryPosition   string       `gorm:"type:varchar(50)" json:"primary_position"`
	SecondaryPosition string       `gorm:"type:varchar(50)" json:"secondary_position"`
	DominantHand      string       `gorm:"type:varchar(20)" json:"dominant_hand"`
	StandingTouch     string       `gorm:"type:varchar(20)" json:"standing_touch"`
	SpikeTouch        string       `gorm:"type:varchar(20)" json:"spike_touch"`
	BlockTouch        string       `gorm:"type:varchar(20)" json:"block_touch"`
	GPA               string       `gorm:"type:varchar(10)" json:"gpa"`
	AreaOfStudy       string       `gorm:"type:varchar(255)" json:"area_of_study"`
	CareerGoals       string       `gorm:"type:text" json:"career_goals"`
	ProfileImageURL   string       `gorm:"type:varchar(500)" json:"profile_image_url"`
	Videos            []VideoModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"videos"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
