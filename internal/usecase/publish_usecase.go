package usecase

import (
	"fmt"

	"recruitme/internal/entity"
	"recruitme/internal/repo/persistent"
	"recruitme/pkg/logger"
	"recruitme/pkg/slug"

	"github.com/google/uuid"
)

// Slug probe attempts before falling back to a collision-free UUID (or,
// on rename, keeping the existing slug).
const maxSlugAttempts = 10

type PublishStatus struct {
	HasUnpublishedChanges bool    `json:"has_unpublished_changes"`
	IsPublished           bool    `json:"is_published"`
	Slug                  *string `json:"slug"`
}

type PublishUseCase interface {
	Publish(userID string) (string, error)
	Unpublish(userID string) error
	Status(userID string) (*PublishStatus, error)
}

type publishUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	logger      *logger.Logger
}

func NewPublishUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	logger *logger.Logger,
) PublishUseCase {
	return &publishUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Publish copies the draft into a fresh published snapshot, resolves the
// public slug, repoints the user at the new snapshot and retires the old
// one. Snapshot creation, pointer update and old-snapshot deletion run
// in one transaction with the pointer update strictly before the delete.
func (uc *publishUseCase) Publish(userID string) (string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}

	if user.DraftProfileID == nil {
		return "", entity.ErrNoDraft
	}

	draft, err := uc.profileRepo.GetByIDWithVideos(*user.DraftProfileID)
	if err != nil {
		return "", fmt.Errorf("failed to load draft profile: %w", err)
	}

	resolvedSlug, err := uc.resolveSlug(user, draft)
	if err != nil {
		return "", err
	}

	snapshot := copySnapshot(draft)

	err = uc.profileRepo.CreatePublishedSnapshot(user.ID, snapshot, resolvedSlug, user.PublishedProfileID)
	if err != nil {
		uc.logger.Error("Failed to publish profile for user %s: %v", user.ID, err)
		return "", fmt.Errorf("failed to publish profile: %w", err)
	}

	uc.logger.Info("Published profile %s for user %s (slug %s)", snapshot.ID, user.ID, resolvedSlug)
	return resolvedSlug, nil
}

// resolveSlug assigns the slug on first publish and regenerates it only
// when the athlete's name-derived candidate changed since the previous
// published snapshot. Probe exhaustion keeps the old slug (or falls back
// to a UUID on first publish) rather than failing the publish.
func (uc *publishUseCase) resolveSlug(user *entity.User, draft *entity.Profile) (string, error) {
	candidate := slug.FromName(draft.FirstName, draft.LastName)

	if user.Slug == nil {
		if candidate == "" {
			return uuid.New().String(), nil
		}
		resolved, ok, err := uc.probeSlug(candidate, user.ID)
		if err != nil {
			return "", err
		}
		if !ok {
			return uuid.New().String(), nil
		}
		return resolved, nil
	}

	previousCandidate := ""
	if user.PublishedProfileID != nil {
		previous, err := uc.profileRepo.GetByID(*user.PublishedProfileID)
		if err != nil {
			return "", fmt.Errorf("failed to load published profile: %w", err)
		}
		previousCandidate = slug.FromName(previous.FirstName, previous.LastName)
	}

	if candidate == "" || candidate == previousCandidate {
		return *user.Slug, nil
	}

	resolved, ok, err := uc.probeSlug(candidate, user.ID)
	if err != nil {
		return "", err
	}
	if !ok {
		return *user.Slug, nil
	}
	return resolved, nil
}

func (uc *publishUseCase) probeSlug(candidate, userID string) (string, bool, error) {
	attempt := candidate
	for i := 0; i < maxSlugAttempts; i++ {
		taken, err := uc.userRepo.SlugTaken(attempt, userID)
		if err != nil {
			return "", false, fmt.Errorf("failed to probe slug: %w", err)
		}
		if !taken {
			return attempt, true, nil
		}
		attempt = slug.WithRandomSuffix(candidate)
	}
	return "", false, nil
}

// copySnapshot duplicates the draft's fields and videos into a snapshot
// with no identity of its own. Video order is re-derived from the
// draft's current sequence, since draft order values may have gaps.
func copySnapshot(draft *entity.Profile) *entity.Profile {
	snapshot := *draft
	snapshot.ID = ""
	snapshot.Videos = nil

	for i := range draft.Videos {
		snapshot.Videos = append(snapshot.Videos, entity.Video{
			URL:   draft.Videos[i].URL,
			Title: draft.Videos[i].Title,
			Order: i,
		})
	}
	return &snapshot
}

// Unpublish hides the public page without destroying anything: only the
// published flag flips, the slug and the published snapshot stay for a
// later republish.
func (uc *publishUseCase) Unpublish(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if !user.IsPublished {
		return entity.ErrNotPublished
	}

	err = uc.userRepo.UpdateFields(user.ID, map[string]interface{}{"is_published": false})
	if err != nil {
		return fmt.Errorf("failed to unpublish profile: %w", err)
	}
	return nil
}

// Status is a pure read: it diffs the draft against the published
// snapshot to decide whether a republish would change anything.
func (uc *publishUseCase) Status(userID string) (*PublishStatus, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	status := &PublishStatus{
		IsPublished: user.IsPublished,
		Slug:        user.Slug,
	}

	// Nothing to compare against until a first publish happens.
	if user.PublishedProfileID == nil || user.DraftProfileID == nil {
		return status, nil
	}

	draft, err := uc.profileRepo.GetByIDWithVideos(*user.DraftProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft profile: %w", err)
	}
	published, err := uc.profileRepo.GetByIDWithVideos(*user.PublishedProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load published profile: %w", err)
	}

	status.HasUnpublishedChanges = profileFieldsChanged(draft, published) || videosChanged(draft.Videos, published.Videos)
	return status, nil
}

func profileFieldsChanged(draft, published *entity.Profile) bool {
	pairs := [][2]string{
		{draft.FirstName, published.FirstName},
		{draft.LastName, published.LastName},
		{draft.Email, published.Email},
		{draft.Phone, published.Phone},
		{draft.GraduationYear, published.GraduationYear},
		{draft.HighSchool, published.HighSchool},
		{draft.Club, published.Club},
		{draft.OtherTeams, published.OtherTeams},
		{draft.Residence, published.Residence},
		{draft.Height, published.Height},
		{draft.PrimaryPosition, published.PrimaryPosition},
		{draft.SecondaryPosition, published.SecondaryPosition},
		{draft.DominantHand, published.DominantHand},
		{draft.StandingTouch, published.StandingTouch},
		{draft.SpikeTouch, published.SpikeTouch},
		{draft.BlockTouch, published.BlockTouch},
		{draft.GPA, published.GPA},
		{draft.AreaOfStudy, published.AreaOfStudy},
		{draft.CareerGoals, published.CareerGoals},
	}

	for _, pair := range pairs {
		if pair[0] != pair[1] {
			return true
		}
	}
	return false
}

func videosChanged(draft, published []entity.Video) bool {
	if len(draft) != len(published) {
		return true
	}
	for i := range draft {
		if draft[i].URL != published[i].URL ||
			draft[i].Title != published[i].Title ||
			draft[i].Order != published[i].Order {
			return true
		}
	}
	return false
}
