package persistent

import (
	"time"

	"recruitme/internal/entity"
	"recruitme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByIDWithVideos(id string) (*entity.Profile, error)
	UpdateFields(id string, fields map[string]interface{}) error
	CreatePublishedSnapshot(userID string, snapshot *entity.Profile, slug string, oldPublishedProfileID *string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	if profileModel.ID == "" {
		profileModel.ID = uuid.New().String()
	}
	if err := r.db.Create(profileModel).Error; err != nil {
		return err
	}
	*profile = *ToProfileEntity(profileModel)
	return nil
}

func (r *profileRepository) GetByID(id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.Where("id = ?", id).First(&profileModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) GetByIDWithVideos(id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Where("id = ?", id).First(&profileModel).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", id).Updates(fields).Error
}

// CreatePublishedSnapshot runs the publish sequence atomically: insert
// the new snapshot (with its video copies), repoint the user at it, and
// only then delete the retired snapshot. The user row must stop
// referencing the old snapshot before that row is deleted.
func (r *profileRepository) CreatePublishedSnapshot(userID string, snapshot *entity.Profile, slug string, oldPublishedProfileID *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		snapshotModel := ToProfileModel(snapshot)
		if snapshotModel.ID == "" {
			snapshotModel.ID = uuid.New().String()
		}
		for i := range snapshotModel.Videos {
			snapshotModel.Videos[i].ProfileID = snapshotModel.ID
		}

		if err := tx.Create(snapshotModel).Error; err != nil {
			return err
		}

		now := time.Now()
		err := tx.Model(&model.UserModel{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"published_profile_id": snapshotModel.ID,
			"is_published":         true,
			"published_at":         now,
			"slug":                 slug,
		}).Error
		if err != nil {
			return err
		}

		if oldPublishedProfileID != nil && *oldPublishedProfileID != snapshotModel.ID {
			if err := tx.Delete(&model.ProfileModel{}, "id = ?", *oldPublishedProfileID).Error; err != nil {
				return err
			}
		}

		*snapshot = *ToProfileEntity(snapshotModel)
		return nil
	})
}
