package persistent

import (
	"recruitme/internal/entity"
	"recruitme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	ListByProfile(profileID string) ([]*entity.Video, error)
	CountByProfile(profileID string) (int64, error)
	GetByID(id string) (*entity.Video, error)
	Create(video *entity.Video) error
	Update(video *entity.Video) error
	Delete(id string) error
	RepackOrders(profileID string) error
	UpdateOrders(profileID string, videoIDs []string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) ListByProfile(profileID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Where("profile_id = ?", profileID).
		Order("display_order ASC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) CountByProfile(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	return r.db.Save(videoModel).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Delete(&model.VideoModel{}, "id = ?", id).Error
}

// RepackOrders rewrites the profile's video orders to a dense 0..n-1
// sequence, preserving the current ordering. Called after deletions.
func (r *videoRepository) RepackOrders(profileID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var videoModels []model.VideoModel
		err := tx.Where("profile_id = ?", profileID).
			Order("display_order ASC").
			Find(&videoModels).Error
		if err != nil {
			return err
		}

		for i := range videoModels {
			if videoModels[i].Order == i {
				continue
			}
			err := tx.Model(&model.VideoModel{}).
				Where("id = ?", videoModels[i].ID).
				Update("display_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateOrders assigns order = position-in-list for each id.
func (r *videoRepository) UpdateOrders(profileID string, videoIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, videoID := range videoIDs {
			err := tx.Model(&model.VideoModel{}).
				Where("id = ? AND profile_id = ?", videoID, profileID).
				Update("display_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
