package models

import (
	"time"
)

// Mood signal sources.
const (
	MoodSourceSelfReport    = "SELF_REPORT"
	MoodSourceTextAnalysis  = "TEXT_ANALYSIS"
	MoodSourceVoiceAnalysis = "VOICE_ANALYSIS"
)

// MoodEvent is an append-only audit record of one reported mood signal.
// Rows are never updated or deleted.
type MoodEvent struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_mood_user_created,priority:1" json:"user_id"`
	Source      string    `gorm:"type:varchar(20);not null" json:"source"`
	Label       string    `gorm:"type:varchar(50);not null" json:"label"`
	Score       float64   `gorm:"not null" json:"score"`
	Confidence  *float64  `json:"confidence,omitempty"`
	ContextText string    `gorm:"type:text" json:"context_text,omitempty"`
	CreatedAt   time.Time `gorm:"index:idx_mood_user_created,priority:2" json:"created_at"`
}

// MoodSignal is the resolved, explicit form of a mood input, either
// supplied by the caller directly or produced by the ML classifier.
type MoodSignal struct {
	Source      string   `json:"source" binding:"required,oneof=SELF_REPORT TEXT_ANALYSIS VOICE_ANALYSIS"`
	Label       string   `json:"label" binding:"required"`
	Score       float64  `json:"score" binding:"required,gte=1,lte=10"`
	ContextText string   `json:"context_text"`
	Confidence  *float64 `json:"confidence,omitempty" binding:"omitempty,gte=0,lte=1"`
}

type MoodSubmission struct {
	Label       string  `json:"label" binding:"required"`
	Score       float64 `json:"score" binding:"required,gte=1,lte=10"`
	ContextText string  `json:"context_text"`
}
