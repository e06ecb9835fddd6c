package main

import (
	"fmt"
	"time"

	"recruitme/internal/model"
	"recruitme/pkg/config"
	"recruitme/pkg/database"
	"recruitme/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo athlete with a draft profile, a published snapshot and a
// couple of highlight videos. Safe to re-run: skips if the demo user
// already exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDemoAthlete(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDemoAthlete(db *gorm.DB, log *logger.Logger) error {
	const demoEmail = "demo@recruitme.app"

	var count int64
	if err := db.Model(&model.UserModel{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Demo athlete already exists, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("DemoPass1!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	videos := []model.VideoModel{
		{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", Title: "2025 Season Highlights", Order: 0},
		{URL: "https://www.youtube.com/watch?v=9bZkp7q19f0", Title: "State Finals", Order: 1},
	}

	makeProfile := func() model.ProfileModel {
		return model.ProfileModel{
			FirstName:       "Jordan",
			LastName:        "Demo",
			Email:           demoEmail,
			GraduationYear:  "2027",
			HighSchool:      "Lakeside High",
			Club:            "Northshore Volleyball Club",
			Residence:       "Seattle, WA",
			Height:          "6'2\"",
			PrimaryPosition: "Outside Hitter",
			DominantHand:    "Right",
			StandingTouch:   "8'4\"",
			SpikeTouch:      "10'1\"",
			GPA:             "3.8",
			AreaOfStudy:     "Engineering",
			CareerGoals:     "Play D1 volleyball while studying engineering.",
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		draft := makeProfile()
		draft.Videos = videos
		if err := tx.Create(&draft).Error; err != nil {
			return err
		}

		published := makeProfile()
		published.Videos = []model.VideoModel{
			{URL: videos[0].URL, Title: videos[0].Title, Order: 0},
			{URL: videos[1].URL, Title: videos[1].Title, Order: 1},
		}
		if err := tx.Create(&published).Error; err != nil {
			return err
		}

		now := time.Now()
		slug := "jordan-demo"
		user := model.UserModel{
			Email:                  demoEmail,
			Password:               string(hashed),
			EmailVerified:          true,
			HasCompletedOnboarding: true,
			DraftProfileID:         &draft.ID,
			PublishedProfileID:     &published.ID,
			Slug:                   &slug,
			IsPublished:            true,
			PublishedAt:            &now,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		log.Info("Seeded demo athlete %s (slug %s)", demoEmail, slug)
		return nil
	})
}
