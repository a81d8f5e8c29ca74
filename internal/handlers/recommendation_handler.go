package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swarloop/internal/models"
	"swarloop/internal/repository"
	"swarloop/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.MoodRecommendationService
	recRepo               repository.RecommendationRepository
}

func NewRecommendationHandler(
	recommendationService services.MoodRecommendationService,
	recRepo repository.RecommendationRepository,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		recRepo:               recRepo,
	}
}

// GenerateMoodRecommendations runs the full mood-to-music cycle for the
// authenticated user.
func (h *RecommendationHandler) GenerateMoodRecommendations(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	result, err := h.recommendationService.GenerateRecommendations(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingMoodInput),
			errors.Is(err, services.ErrConflictingMoodInput),
			errors.Is(err, services.ErrInvalidLimit),
			errors.Is(err, services.ErrInvalidConfidence):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrClassifierUnavailable):
			// Provider details stay out of the response.
			c.JSON(http.StatusBadGateway, gin.H{
				"status":  "error",
				"message": "Failed to analyze mood",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to generate recommendations",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations generated",
		"data":    result,
	})
}

// GetRecommendationHistory lists the caller's past recommendation runs,
// newest first, with their frozen scores and reasons.
func (h *RecommendationHandler) GetRecommendationHistory(c *gin.Context) {
	userID := c.GetUint("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	recs, err := h.recRepo.GetRecommendationsByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch recommendation history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"recommendations": recs,
			"count":           len(recs),
		},
	})
}

func (h *RecommendationHandler) GetRecommendationByID(c *gin.Context) {
	userID := c.GetUint("user_id")
	id := c.Param("id")

	rec, err := h.recRepo.GetRecommendationByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Recommendation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch recommendation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rec,
	})
}
