package usecase

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"recruitme/internal/entity"
	"recruitme/internal/repo/persistent"
	"recruitme/pkg/imageproc"
	"recruitme/pkg/logger"

	"github.com/google/uuid"
)

// MaxImageSize caps profile image uploads at 5MB.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var graduationYearPattern = regexp.MustCompile(`^\d{4}$`)

// ProfileUpdate carries a partial draft edit; nil fields are untouched,
// empty strings clear the field.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Phone             *string
	GraduationYear    *string
	HighSchool        *string
	Club              *string
	OtherTeams        *string
	Residence         *string
	Height            *string
	PrimaryPosition   *string
	SecondaryPosition *string
	DominantHand      *string
	StandingTouch     *string
	SpikeTouch        *string
	BlockTouch        *string
	GPA               *string
	AreaOfStudy       *string
	CareerGoals       *string
}

type ProfileUseCase interface {
	GetDraft(userID string) (*entity.Profile, error)
	UpdateDraft(userID string, update *ProfileUpdate) (*entity.Profile, error)
	UploadImage(userID string, file io.Reader, contentType string, size int64) (string, error)
	DeleteImage(userID string) error
	OnboardingStatus(userID string) (bool, error)
	CompleteOnboarding(userID string) error
	PublicProfile(slug string) (*entity.Profile, error)
}

type profileUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	storage     ImageStorage
	logger      *logger.Logger
}

func NewProfileUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	storage ImageStorage,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
		logger:      logger,
	}
}

func (uc *profileUseCase) GetDraft(userID string) (*entity.Profile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	draft, err := uc.ensureDraft(user)
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *profileUseCase) UpdateDraft(userID string, update *ProfileUpdate) (*entity.Profile, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	draft, err := uc.ensureDraft(user)
	if err != nil {
		return nil, err
	}

	fields := updateFields(update)
	if len(fields) > 0 {
		// Last write wins for concurrent edits of the same draft.
		if err := uc.profileRepo.UpdateFields(draft.ID, fields); err != nil {
			uc.logger.Error("Failed to update draft %s: %v", draft.ID, err)
			return nil, fmt.Errorf("failed to update profile")
		}
	}

	return uc.profileRepo.GetByID(draft.ID)
}

func (uc *profileUseCase) UploadImage(userID string, file io.Reader, contentType string, size int64) (string, error) {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return "", entity.NewValidationError("invalid file type, upload a JPG, PNG, or WebP image")
	}
	if size > MaxImageSize {
		return "", entity.NewValidationError("file too large, maximum size is 5MB")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}

	draft, err := uc.ensureDraft(user)
	if err != nil {
		return "", err
	}

	// Resize to fit 800x800 and re-encode as JPEG before storing.
	processed, err := imageproc.Process(file)
	if err != nil {
		return "", entity.NewValidationError("failed to process image")
	}

	// Replace rather than accumulate: the old image goes first, and a
	// failed delete only costs an orphaned object.
	if draft.ProfileImageURL != "" {
		if err := uc.storage.DeleteFileByURL(draft.ProfileImageURL); err != nil {
			uc.logger.Warn("Failed to delete previous image for profile %s: %v", draft.ID, err)
		}
	}

	key := fmt.Sprintf("profiles/%s/%s.jpg", user.ID, uuid.New().String())

	imageURL, err := uc.storage.UploadFile(key, bytes.NewReader(processed), "image/jpeg")
	if err != nil {
		if entity.IsValidation(err) {
			return "", err
		}
		uc.logger.Error("Failed to upload image for profile %s: %v", draft.ID, err)
		return "", fmt.Errorf("failed to upload image")
	}

	err = uc.profileRepo.UpdateFields(draft.ID, map[string]interface{}{"profile_image_url": imageURL})
	if err != nil {
		uc.logger.Error("Failed to store image URL for profile %s: %v", draft.ID, err)
		return "", fmt.Errorf("failed to upload image")
	}

	return imageURL, nil
}

func (uc *profileUseCase) DeleteImage(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user.DraftProfileID == nil {
		return entity.ErrNotFound
	}

	draft, err := uc.profileRepo.GetByID(*user.DraftProfileID)
	if err != nil {
		return err
	}
	if draft.ProfileImageURL == "" {
		return entity.NewValidationError("no image to delete")
	}

	// Best-effort: the DB row is cleared even if storage deletion fails.
	if err := uc.storage.DeleteFileByURL(draft.ProfileImageURL); err != nil {
		uc.logger.Warn("Failed to delete image from storage for profile %s: %v", draft.ID, err)
	}

	return uc.profileRepo.UpdateFields(draft.ID, map[string]interface{}{"profile_image_url": ""})
}

func (uc *profileUseCase) OnboardingStatus(userID string) (bool, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	return user.HasCompletedOnboarding, nil
}

func (uc *profileUseCase) CompleteOnboarding(userID string) error {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return err
	}
	return uc.userRepo.UpdateFields(userID, map[string]interface{}{"has_completed_onboarding": true})
}

// PublicProfile serves the published snapshot for a slug; unknown slugs
// and unpublished profiles are indistinguishable from the outside.
func (uc *profileUseCase) PublicProfile(slug string) (*entity.Profile, error) {
	user, err := uc.userRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if !user.IsPublished || user.PublishedProfileID == nil {
		return nil, entity.ErrNotFound
	}

	return uc.profileRepo.GetByIDWithVideos(*user.PublishedProfileID)
}

// ensureDraft lazily creates the draft profile on first access, seeded
// with the account's email.
func (uc *profileUseCase) ensureDraft(user *entity.User) (*entity.Profile, error) {
	if user.DraftProfileID != nil {
		return uc.profileRepo.GetByID(*user.DraftProfileID)
	}

	draft := &entity.Profile{Email: user.Email}
	if err := uc.profileRepo.Create(draft); err != nil {
		uc.logger.Error("Failed to create draft profile for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to create draft profile")
	}

	err := uc.userRepo.UpdateFields(user.ID, map[string]interface{}{"draft_profile_id": draft.ID})
	if err != nil {
		uc.logger.Error("Failed to attach draft profile to user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to create draft profile")
	}

	user.DraftProfileID = &draft.ID
	return draft, nil
}

func validateUpdate(update *ProfileUpdate) error {
	if update.GraduationYear != nil && *update.GraduationYear != "" {
		if !graduationYearPattern.MatchString(*update.GraduationYear) {
			return entity.NewValidationError("graduation year must be 4 digits")
		}
	}
	if update.Email != nil && *update.Email != "" {
		if !strings.Contains(*update.Email, "@") {
			return entity.NewValidationError("invalid email address")
		}
	}
	for _, position := range []*string{update.PrimaryPosition, update.SecondaryPosition} {
		if position != nil && *position != "" && !entity.IsValidPosition(*position) {
			return entity.NewValidationError("invalid position: %s", *position)
		}
	}
	return nil
}

func updateFields(update *ProfileUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, value *string) {
		if value != nil {
			fields[column] = strings.TrimSpace(*value)
		}
	}

	set("first_name", update.FirstName)
	set("last_name", update.LastName)
	set("email", update.Email)
	set("phone", update.Phone)
	set("graduation_year", update.GraduationYear)
	set("high_school", update.HighSchool)
	set("club", update.Club)
	set("other_teams", update.OtherTeams)
	set("residence", update.Residence)
	set("height", update.Height)
	set("primary_position", update.PrimaryPosition)
	set("secondary_position", update.SecondaryPosition)
	set("dominant_hand", update.DominantHand)
	set("standing_touch", update.StandingTouch)
	set("spike_touch", update.SpikeTouch)
	set("block_touch", update.BlockTouch)
	set("gpa", update.GPA)
	set("area_of_study", update.AreaOfStudy)
	set("career_goals", update.CareerGoals)
	return fields
}
