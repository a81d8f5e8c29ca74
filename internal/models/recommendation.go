package models

import (
	"time"
)

// Recommendation is the persisted output of one scoring run. Scores and
// reasons are frozen at creation time; later catalog edits don't touch it.
type Recommendation struct {
	ID           string                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uint                  `gorm:"not null;index:idx_rec_user_created,priority:1" json:"user_id"`
	ModelVersion string                `gorm:"type:varchar(50);not null" json:"model_version"`
	Reason       string                `gorm:"type:text" json:"reason"`
	CreatedAt    time.Time             `gorm:"index:idx_rec_user_created,priority:2" json:"created_at"`
	Tracks       []RecommendationTrack `gorm:"foreignKey:RecommendationID" json:"tracks"`
}

// RecommendationTrack is one ranked entry; Rank is the explicit order
// column so the list re-reads in generation order.
type RecommendationTrack struct {
	ID               uint    `gorm:"primaryKey" json:"-"`
	RecommendationID string  `gorm:"type:uuid;not null;index" json:"-"`
	TrackID          string  `gorm:"type:uuid;not null;index" json:"track_id"`
	Rank             int     `gorm:"not null" json:"rank"`
	Score            float64 `gorm:"not null" json:"score"`
	Reason           string  `gorm:"type:text" json:"reason"`

	Track Track `gorm:"foreignKey:TrackID" json:"track"`
}

// RankedTrack is the in-flight result of the scorer before persistence.
type RankedTrack struct {
	Track  Track   `json:"track"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RecommendationRequest is the caller-facing input: exactly one of
// MoodEvent or MoodText must be set.
type RecommendationRequest struct {
	MoodEvent *MoodSignal `json:"mood_event,omitempty"`
	MoodText  string      `json:"mood_text,omitempty"`
	Limit     *int        `json:"limit,omitempty"`
}

// RecommendationResult is the caller-facing output of one cycle.
type RecommendationResult struct {
	MoodEvent       MoodEvent     `json:"mood_event"`
	Recommendations []RankedTrack `json:"recommendations"`
	ModelVersion    string        `json:"model_version"`
	Reason          string        `json:"reason"`
}
