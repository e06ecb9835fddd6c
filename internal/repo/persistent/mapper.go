package persistent

import (
	"recruitme/internal/entity"
	"recruitme/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                     m.ID,
		Email:                  m.Email,
		Password:               m.Password,
		EmailVerified:          m.EmailVerified,
		HasCompletedOnboarding: m.HasCompletedOnboarding,
		DraftProfileID:         m.DraftProfileID,
		PublishedProfileID:     m.PublishedProfileID,
		Slug:                   m.Slug,
		IsPublished:            m.IsPublished,
		PublishedAt:            m.PublishedAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                     e.ID,
		Email:                  e.Email,
		Password:               e.Password,
		EmailVerified:          e.EmailVerified,
		HasCompletedOnboarding: e.HasCompletedOnboarding,
		DraftProfileID:         e.DraftProfileID,
		PublishedProfileID:     e.PublishedProfileID,
		Slug:                   e.Slug,
		IsPublished:            e.IsPublished,
		PublishedAt:            e.PublishedAt,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:                m.ID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		Phone:             m.Phone,
		GraduationYear:    m.GraduationYear,
		HighSchool:        m.HighSchool,
		Club:              m.Club,
		OtherTeams:        m.OtherTeams,
		Residence:         m.Residence,
		Height:            m.Height,
		PrimaryPosition:   m.PrimaryPosition,
		SecondaryPosition: m.SecondaryPosition,
		DominantHand:      m.DominantHand,
		StandingTouch:     m.StandingTouch,
		SpikeTouch:        m.SpikeTouch,
		BlockTouch:        m.BlockTouch,
		GPA:               m.GPA,
		AreaOfStudy:       m.AreaOfStudy,
		CareerGoals:       m.CareerGoals,
		ProfileImageURL:   m.ProfileImageURL,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	for i := range m.Videos {
		profile.Videos = append(profile.Videos, *ToVideoEntity(&m.Videos[i]))
	}
	return profile
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	profileModel := &model.ProfileModel{
		ID:                e.ID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Email:             e.Email,
		Phone:             e.Phone,
		GraduationYear:    e.GraduationYear,
		HighSchool:        e.HighSchool,
		Club:              e.Club,
		OtherTeams:        e.OtherTeams,
		Residence:         e.Residence,
		Height:            e.Height,
		PrimaryPosition:   e.PrimaryPosition,
		SecondaryPosition: e.SecondaryPosition,
		DominantHand:      e.DominantHand,
		StandingTouch:     e.StandingTouch,
		SpikeTouch:        e.SpikeTouch,
		BlockTouch:        e.BlockTouch,
		GPA:               e.GPA,
		AreaOfStudy:       e.AreaOfStudy,
		CareerGoals:       e.CareerGoals,
		ProfileImageURL:   e.ProfileImageURL,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}

	for i := range e.Videos {
		profileModel.Videos = append(profileModel.Videos, *ToVideoModel(&e.Videos[i]))
	}
	return profileModel
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		URL:       m.URL,
		Title:     m.Title,
		Order:     m.Order,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:        e.ID,
		ProfileID: e.ProfileID,
		URL:       e.URL,
		Title:     e.Title,
		Order:     e.Order,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToAuthTokenEntity(m *model.AuthTokenModel) *entity.AuthToken {
	if m == nil {
		return nil
	}

	return &entity.AuthToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      m.Kind,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		UsedAt:    m.UsedAt,
		CreatedAt: m.CreatedAt,
	}
}

func ToAuthTokenModel(e *entity.AuthToken) *model.AuthTokenModel {
	if e == nil {
		return nil
	}

	return &model.AuthTokenModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Kind:      e.Kind,
		Token:     e.Token,
		ExpiresAt: e.ExpiresAt,
		UsedAt:    e.UsedAt,
		CreatedAt: e.CreatedAt,
	}
}
