package http

import (
	"net/http"

	"recruitme/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase}
}

type AddVideoRequest struct {
	URL   string `json:"url" binding:"required"`
	Title string `json:"title"`
}

type UpdateVideoRequest struct {
	URL   *string `json:"url"`
	Title *string `json:"title"`
}

type ReorderVideosRequest struct {
	VideoIDs []string `json:"video_ids" binding:"required"`
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.videoUseCase.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (h *VideoHandler) AddVideo(c *gin.Context) {
	var req AddVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	video, err := h.videoUseCase.Add(userID, req.URL, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	videoID := c.Param("id")

	video, err := h.videoUseCase.Update(videoID, userID, req.URL, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("id")

	if err := h.videoUseCase.Delete(videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *VideoHandler) ReorderVideos(c *gin.Context) {
	var req ReorderVideosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	videos, err := h.videoUseCase.Reorder(userID, req.VideoIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
