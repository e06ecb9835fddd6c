package persistent

import (
	"time"

	"recruitme/internal/entity"
	"recruitme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Replace(token *entity.AuthToken) error
	GetByToken(kind, token string) (*entity.AuthToken, error)
	Delete(id string) error
	ConsumePasswordReset(token *entity.AuthToken, passwordHash string) error
	ConsumeEmailVerification(token *entity.AuthToken) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Replace deletes the user's existing tokens of the same kind and
// stores the new one, so only the latest emailed link is ever valid.
func (r *tokenRepository) Replace(token *entity.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&model.AuthTokenModel{}, "user_id = ? AND kind = ?", token.UserID, token.Kind).Error
		if err != nil {
			return err
		}

		tokenModel := ToAuthTokenModel(token)
		if tokenModel.ID == "" {
			tokenModel.ID = uuid.New().String()
		}
		if err := tx.Create(tokenModel).Error; err != nil {
			return err
		}
		*token = *ToAuthTokenEntity(tokenModel)
		return nil
	})
}

func (r *tokenRepository) GetByToken(kind, token string) (*entity.AuthToken, error) {
	var tokenModel model.AuthTokenModel
	err := r.db.Where("kind = ? AND token = ?", kind, token).First(&tokenModel).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return ToAuthTokenEntity(&tokenModel), nil
}

func (r *tokenRepository) Delete(id string) error {
	return r.db.Delete(&model.AuthTokenModel{}, "id = ?", id).Error
}

// ConsumePasswordReset updates the user's password, marks the token
// used, and removes sibling tokens in a single transaction.
func (r *tokenRepository) ConsumePasswordReset(token *entity.AuthToken, passwordHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.UserModel{}).
			Where("id = ?", token.UserID).
			Update("password", passwordHash).Error
		if err != nil {
			return err
		}
		return r.markUsedAndDropSiblings(tx, token)
	})
}

// ConsumeEmailVerification flips the user's verified flag, marks the
// token used, and removes sibling tokens in a single transaction.
func (r *tokenRepository) ConsumeEmailVerification(token *entity.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.UserModel{}).
			Where("id = ?", token.UserID).
			Update("email_verified", true).Error
		if err != nil {
			return err
		}
		return r.markUsedAndDropSiblings(tx, token)
	})
}

func (r *tokenRepository) markUsedAndDropSiblings(tx *gorm.DB, token *entity.AuthToken) error {
	now := time.Now()
	err := tx.Model(&model.AuthTokenModel{}).
		Where("id = ?", token.ID).
		Update("used_at", now).Error
	if err != nil {
		return err
	}

	return tx.Delete(&model.AuthTokenModel{},
		"user_id = ? AND kind = ? AND id <> ?", token.UserID, token.Kind, token.ID).Error
}
