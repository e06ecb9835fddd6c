package http

import (
	"net/http"

	"recruitme/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	publishUseCase usecase.PublishUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, publishUseCase usecase.PublishUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		publishUseCase: publishUseCase,
	}
}

type UpdateProfileRequest struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	GraduationYear    *string `json:"graduation_year"`
	HighSchool        *string `json:"high_school"`
	Club              *string `json:"club"`
	OtherTeams        *string `json:"other_teams"`
	Residence         *string `json:"residence"`
	Height            *string `json:"height"`
	PrimaryPosition   *string `json:"primary_position"`
	SecondaryPosition *string `json:"secondary_position"`
	DominantHand      *string `json:"dominant_hand"`
	StandingTouch     *string `json:"standing_touch"`
	SpikeTouch        *string `json:"spike_touch"`
	BlockTouch        *string `json:"block_touch"`
	GPA               *string `json:"gpa"`
	AreaOfStudy       *string `json:"area_of_study"`
	CareerGoals       *string `json:"career_goals"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profileUseCase.GetDraft(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	profile, err := h.profileUseCase.UpdateDraft(userID, &usecase.ProfileUpdate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		GraduationYear:    req.GraduationYear,
		HighSchool:        req.HighSchool,
		Club:              req.Club,
		OtherTeams:        req.OtherTeams,
		Residence:         req.Residence,
		Height:            req.Height,
		PrimaryPosition:   req.PrimaryPosition,
		SecondaryPosition: req.SecondaryPosition,
		DominantHand:      req.DominantHand,
		StandingTouch:     req.StandingTouch,
		SpikeTouch:        req.SpikeTouch,
		BlockTouch:        req.BlockTouch,
		GPA:               req.GPA,
		AreaOfStudy:       req.AreaOfStudy,
		CareerGoals:       req.CareerGoals,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	imageURL, err := h.profileUseCase.UploadImage(userID, file, contentType, fileHeader.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}

func (h *ProfileHandler) DeleteImage(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.profileUseCase.DeleteImage(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProfileHandler) OnboardingStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	completed, err := h.profileUseCase.OnboardingStatus(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"has_completed_onboarding": completed})
}

func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.profileUseCase.CompleteOnboarding(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ProfileHandler) Publish(c *gin.Context) {
	userID := c.GetString("user_id")

	slug, err := h.publishUseCase.Publish(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"slug":    slug,
		"message": "Profile published successfully",
	})
}

func (h *ProfileHandler) Unpublish(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.publishUseCase.Unpublish(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile unpublished successfully",
	})
}

func (h *ProfileHandler) Status(c *gin.Context) {
	userID := c.GetString("user_id")

	status, err := h.publishUseCase.Status(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
