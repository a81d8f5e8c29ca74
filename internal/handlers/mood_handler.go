package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"swarloop/internal/models"
	"swarloop/internal/repository"
	"swarloop/internal/services"
)

type MoodHandler struct {
	moodRepo   repository.MoodEventRepository
	classifier services.MoodClassifierService
}

func NewMoodHandler(moodRepo repository.MoodEventRepository, classifier services.MoodClassifierService) *MoodHandler {
	return &MoodHandler{moodRepo: moodRepo, classifier: classifier}
}

// SubmitMood records a self-reported mood event without generating a
// recommendation.
func (h *MoodHandler) SubmitMood(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.MoodSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	event := &models.MoodEvent{
		UserID:      userID,
		Source:      models.MoodSourceSelfReport,
		Label:       strings.ToLower(strings.TrimSpace(req.Label)),
		Score:       req.Score,
		ContextText: req.ContextText,
	}
	if err := h.moodRepo.CreateMoodEvent(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record mood",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Mood recorded",
		"data":    event,
	})
}

// SubmitVoiceMood classifies a pre-computed audio feature bundle via
// the ML service and records the resulting mood event.
func (h *MoodHandler) SubmitVoiceMood(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		AudioFeatures map[string]float64 `json:"audio_features" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	signal, err := h.classifier.AnalyzeAudioFeatures(c.Request.Context(), req.AudioFeatures)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to analyze mood",
		})
		return
	}

	event := &models.MoodEvent{
		UserID:     userID,
		Source:     signal.Source,
		Label:      strings.ToLower(strings.TrimSpace(signal.Label)),
		Score:      signal.Score,
		Confidence: signal.Confidence,
	}
	if err := h.moodRepo.CreateMoodEvent(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record mood",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Mood recorded",
		"data":    event,
	})
}

// GetMoodHistory lists the caller's mood events, newest first.
func (h *MoodHandler) GetMoodHistory(c *gin.Context) {
	userID := c.GetUint("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	events, err := h.moodRepo.GetMoodEventsByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch mood history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"moods": events,
			"count": len(events),
		},
	})
}
