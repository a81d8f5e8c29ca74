package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"swarloop/internal/models"
	"swarloop/internal/repository"
)

type TrackHandler struct {
	trackRepo repository.TrackRepository
}

func NewTrackHandler(trackRepo repository.TrackRepository) *TrackHandler {
	return &TrackHandler{trackRepo: trackRepo}
}

func (h *TrackHandler) GetAllTracks(c *gin.Context) {
	tracks, err := h.trackRepo.GetAllTracks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch tracks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"tracks": tracks,
			"count":  len(tracks),
		},
	})
}

func (h *TrackHandler) GetTrackByID(c *gin.Context) {
	track, err := h.trackRepo.GetTrackByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Track not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch track",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   track,
	})
}

// SeedTracks loads a demo catalog of mood-tagged tracks. Skipped when
// the catalog already has rows.
func (h *TrackHandler) SeedTracks(c *gin.Context) {
	count, err := h.trackRepo.CountTracks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check catalog",
		})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Catalog already seeded",
			"data":    gin.H{"count": count},
		})
		return
	}

	if err := h.trackRepo.CreateTracks(seedCatalog()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to seed catalog",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Catalog seeded",
		"data":    gin.H{"count": len(seedCatalog())},
	})
}

func seedCatalog() []models.Track {
	return []models.Track{
		{
			Title: "Morning Light", Artist: "Aria Vale", Album: "Daybreak",
			GenreTags: pq.StringArray{"pop", "indie"},
			MoodTags:  pq.StringArray{"happy", "uplifting"},
			Valence:   0.9, Energy: 0.7, Danceability: 0.6, Tempo: 118, DurationMs: 201000, IsActive: true,
		},
		{
			Title: "Voltage", Artist: "Neon Drift", Album: "Circuits",
			GenreTags: pq.StringArray{"electronic", "dance"},
			MoodTags:  pq.StringArray{"energetic", "happy", "dance"},
			Valence:   0.85, Energy: 0.92, Danceability: 0.9, Tempo: 128, DurationMs: 214000, IsActive: true,
		},
		{
			Title: "Still Water", Artist: "Forest Keys", Album: "Under Canopy",
			GenreTags: pq.StringArray{"ambient"},
			MoodTags:  pq.StringArray{"calm", "peaceful", "ambient"},
			Valence:   0.55, Energy: 0.2, Danceability: 0.2, Tempo: 62, DurationMs: 305000, IsActive: true,
		},
		{
			Title: "Grey Harbour", Artist: "Low Tide", Album: "Salt",
			GenreTags: pq.StringArray{"folk"},
			MoodTags:  pq.StringArray{"melancholic", "introspective"},
			Valence:   0.22, Energy: 0.3, Danceability: 0.25, Tempo: 78, DurationMs: 252000, IsActive: true,
		},
		{
			Title: "Breathing Room", Artist: "Sama", Album: "Stillness",
			GenreTags: pq.StringArray{"ambient", "meditation"},
			MoodTags:  pq.StringArray{"meditative", "calm", "peaceful"},
			Valence:   0.5, Energy: 0.12, Danceability: 0.1, Tempo: 55, DurationMs: 420000, IsActive: true,
		},
		{
			Title: "Paper Kites", Artist: "June Hollow", Album: "Open Windows",
			GenreTags: pq.StringArray{"indie"},
			MoodTags:  pq.StringArray{"uplifting", "warm"},
			Valence:   0.75, Energy: 0.55, Danceability: 0.5, Tempo: 104, DurationMs: 228000, IsActive: true,
		},
		{
			Title: "Slow Orbit", Artist: "Cassiopeia", Album: "Apogee",
			GenreTags: pq.StringArray{"ambient", "electronic"},
			MoodTags:  pq.StringArray{"ambient", "introspective"},
			Valence:   0.4, Energy: 0.35, Danceability: 0.3, Tempo: 90, DurationMs: 387000, IsActive: true,
		},
		{
			Title: "Middle Ground", Artist: "The Plains", Album: "Level",
			GenreTags: pq.StringArray{"rock"},
			MoodTags:  pq.StringArray{"neutral", "balanced"},
			Valence:   0.5, Energy: 0.5, Danceability: 0.45, Tempo: 100, DurationMs: 240000, IsActive: true,
		},
		{
			Title: "Uptempo", Artist: "Neon Drift", Album: "Circuits",
			GenreTags: pq.StringArray{"electronic"},
			MoodTags:  pq.StringArray{"energetic", "upbeat"},
			Valence:   0.8, Energy: 0.88, Danceability: 0.85, Tempo: 132, DurationMs: 198000, IsActive: true,
		},
		{
			Title: "Ember Waltz", Artist: "Aria Vale", Album: "Daybreak",
			GenreTags: pq.StringArray{"pop"},
			MoodTags:  pq.StringArray{"romantic", "warm", "uplifting"},
			Valence:   0.7, Energy: 0.45, Danceability: 0.55, Tempo: 96, DurationMs: 233000, IsActive: true,
		},
	}
}
