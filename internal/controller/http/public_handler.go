package http

import (
	"net/http"

	"recruitme/internal/entity"
	"recruitme/internal/usecase"
	"recruitme/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewPublicHandler(profileUseCase usecase.ProfileUseCase) *PublicHandler {
	return &PublicHandler{profileUseCase: profileUseCase}
}

// athleteVideo is the public view of a highlight video, carrying the
// ready-to-embed player URL alongside the canonical watch URL.
type athleteVideo struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	EmbedURL string `json:"embed_url"`
}

type athleteProfileResponse struct {
	*entity.Profile
	Videos []athleteVideo `json:"videos"`
}

func (h *PublicHandler) GetAthleteProfile(c *gin.Context) {
	slug := c.Param("slug")

	profile, err := h.profileUseCase.PublicProfile(slug)
	if err != nil {
		respondError(c, err)
		return
	}

	videos := make([]athleteVideo, len(profile.Videos))
	for i, v := range profile.Videos {
		embedURL := ""
		if videoID := youtube.ExtractVideoID(v.URL); videoID != "" {
			embedURL = youtube.EmbedURL(videoID)
		}
		videos[i] = athleteVideo{
			ID:       v.ID,
			URL:      v.URL,
			Title:    v.Title,
			Order:    v.Order,
			EmbedURL: embedURL,
		}
	}

	c.JSON(http.StatusOK, athleteProfileResponse{Profile: profile, Videos: videos})
}
