package persistent

import (
	"errors"

	"recruitme/internal/entity"
	"recruitme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetBySlug(slug string) (*entity.User, error)
	UpdateFields(id string, fields map[string]interface{}) error
	SlugTaken(slug string, excludeUserID string) (bool, error)
	DeleteAccount(user *entity.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetBySlug(slug string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("slug = ?", slug).First(&userModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) SlugTaken(slug string, excludeUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where("slug = ? AND id <> ?", slug, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteAccount removes the user and both owned profile snapshots in one
// transaction. The user row goes first so its profile pointers never
// reference rows mid-deletion; auth tokens and videos go with their
// owners via FK cascade.
func (r *userRepository) DeleteAccount(user *entity.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UserModel{}, "id = ?", user.ID).Error; err != nil {
			return err
		}

		profileIDs := make([]string, 0, 2)
		if user.DraftProfileID != nil {
			profileIDs = append(profileIDs, *user.DraftProfileID)
		}
		if user.PublishedProfileID != nil {
			profileIDs = append(profileIDs, *user.PublishedProfileID)
		}
		if len(profileIDs) > 0 {
			if err := tx.Delete(&model.ProfileModel{}, "id IN ?", profileIDs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}
