package usecase

import (
	"fmt"

	"recruitme/internal/entity"
	"recruitme/internal/repo/persistent"
	"recruitme/pkg/logger"
	"recruitme/pkg/youtube"
)

type VideoUseCase interface {
	List(userID string) ([]*entity.Video, error)
	Add(userID, url, title string) (*entity.Video, error)
	Update(videoID, userID string, url, title *string) (*entity.Video, error)
	Delete(videoID, userID string) error
	Reorder(userID string, videoIDs []string) ([]*entity.Video, error)
}

type videoUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewVideoUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *videoUseCase) List(userID string) ([]*entity.Video, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if user.DraftProfileID == nil {
		return []*entity.Video{}, nil
	}
	return uc.videoRepo.ListByProfile(*user.DraftProfileID)
}

func (uc *videoUseCase) Add(userID, url, title string) (*entity.Video, error) {
	canonicalURL, err := youtube.CanonicalWatchURL(url)
	if err != nil {
		return nil, entity.NewValidationError("invalid YouTube URL, use a valid YouTube video URL")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	draftID, err := uc.ensureDraftID(user)
	if err != nil {
		return nil, err
	}

	count, err := uc.videoRepo.CountByProfile(draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}
	if count >= entity.MaxVideosPerProfile {
		return nil, entity.NewValidationError("maximum %d videos allowed", entity.MaxVideosPerProfile)
	}

	existing, err := uc.videoRepo.ListByProfile(draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	if err := uc.checkDuplicate(existing, canonicalURL, ""); err != nil {
		return nil, err
	}

	// New videos go after the current highest order, which may have
	// gaps; publishing re-derives a dense sequence.
	order := 0
	if len(existing) > 0 {
		order = existing[len(existing)-1].Order + 1
	}

	video := &entity.Video{
		ProfileID: draftID,
		URL:       canonicalURL,
		Title:     title,
		Order:     order,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video for profile %s: %v", draftID, err)
		return nil, fmt.Errorf("failed to add video")
	}
	return video, nil
}

func (uc *videoUseCase) Update(videoID, userID string, url, title *string) (*entity.Video, error) {
	video, draftID, err := uc.ownedVideo(videoID, userID)
	if err != nil {
		return nil, err
	}

	if url != nil {
		canonicalURL, err := youtube.CanonicalWatchURL(*url)
		if err != nil {
			return nil, entity.NewValidationError("invalid YouTube URL, use a valid YouTube video URL")
		}

		existing, err := uc.videoRepo.ListByProfile(draftID)
		if err != nil {
			return nil, fmt.Errorf("failed to list videos: %w", err)
		}
		if err := uc.checkDuplicate(existing, canonicalURL, video.ID); err != nil {
			return nil, err
		}
		video.URL = canonicalURL
	}

	if title != nil {
		video.Title = *title
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video %s: %v", video.ID, err)
		return nil, fmt.Errorf("failed to update video")
	}
	return video, nil
}

func (uc *videoUseCase) Delete(videoID, userID string) error {
	video, draftID, err := uc.ownedVideo(videoID, userID)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(video.ID); err != nil {
		uc.logger.Error("Failed to delete video %s: %v", video.ID, err)
		return fmt.Errorf("failed to delete video")
	}

	// Keep orders dense after removal.
	if err := uc.videoRepo.RepackOrders(draftID); err != nil {
		uc.logger.Error("Failed to repack video orders for profile %s: %v", draftID, err)
		return fmt.Errorf("failed to delete video")
	}
	return nil
}

func (uc *videoUseCase) Reorder(userID string, videoIDs []string) ([]*entity.Video, error) {
	if len(videoIDs) == 0 {
		return nil, entity.NewValidationError("at least one video ID is required")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.DraftProfileID == nil {
		return nil, entity.ErrNoDraft
	}
	draftID := *user.DraftProfileID

	existing, err := uc.videoRepo.ListByProfile(draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	// The submitted id set must match the draft's video set exactly.
	if len(videoIDs) != len(existing) {
		return nil, entity.NewValidationError("video list does not match profile videos")
	}
	existingIDs := make(map[string]bool, len(existing))
	for _, v := range existing {
		existingIDs[v.ID] = true
	}
	seen := make(map[string]bool, len(videoIDs))
	for _, id := range videoIDs {
		if !existingIDs[id] {
			return nil, entity.ErrForbidden
		}
		if seen[id] {
			return nil, entity.NewValidationError("duplicate video ID in reorder list")
		}
		seen[id] = true
	}

	if err := uc.videoRepo.UpdateOrders(draftID, videoIDs); err != nil {
		uc.logger.Error("Failed to reorder videos for profile %s: %v", draftID, err)
		return nil, fmt.Errorf("failed to reorder videos")
	}

	return uc.videoRepo.ListByProfile(draftID)
}

func (uc *videoUseCase) ownedVideo(videoID, userID string) (*entity.Video, string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user.DraftProfileID == nil {
		return nil, "", entity.ErrNoDraft
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, "", err
	}

	if video.ProfileID != *user.DraftProfileID {
		return nil, "", entity.ErrForbidden
	}
	return video, *user.DraftProfileID, nil
}

// checkDuplicate rejects a URL whose extracted video identifier matches
// another video in the same draft, regardless of URL surface form.
func (uc *videoUseCase) checkDuplicate(existing []*entity.Video, canonicalURL, excludeID string) error {
	newID := youtube.ExtractVideoID(canonicalURL)
	for _, v := range existing {
		if v.ID == excludeID {
			continue
		}
		if youtube.ExtractVideoID(v.URL) == newID {
			return entity.NewValidationError("this video is already in your profile")
		}
	}
	return nil
}

// ensureDraftID lazily creates the draft profile so a first video add
// works without visiting the profile form.
func (uc *videoUseCase) ensureDraftID(user *entity.User) (string, error) {
	if user.DraftProfileID != nil {
		return *user.DraftProfileID, nil
	}

	draft := &entity.Profile{Email: user.Email}
	if err := uc.profileRepo.Create(draft); err != nil {
		uc.logger.Error("Failed to create draft profile for user %s: %v", user.ID, err)
		return "", fmt.Errorf("failed to create draft profile")
	}

	err := uc.userRepo.UpdateFields(user.ID, map[string]interface{}{"draft_profile_id": draft.ID})
	if err != nil {
		uc.logger.Error("Failed to attach draft profile to user %s: %v", user.ID, err)
		return "", fmt.Errorf("failed to create draft profile")
	}

	user.DraftProfileID = &draft.ID
	return draft.ID, nil
}
