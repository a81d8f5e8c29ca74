package models

import (
	"time"

	"github.com/lib/pq"
)

// Track is owned by the content-management side. The recommendation
// core only ever reads it.
type Track struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Artist       string         `gorm:"type:varchar(255);not null" json:"artist"`
	Album        string         `gorm:"type:varchar(255)" json:"album"`
	GenreTags    pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"genre_tags"`
	MoodTags     pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"mood_tags"`
	DurationMs   int            `json:"duration_ms"`
	Valence      float64        `gorm:"default:0" json:"valence"`
	Energy       float64        `gorm:"default:0" json:"energy"`
	Danceability float64        `gorm:"default:0" json:"danceability"`
	Tempo        float64        `gorm:"default:0" json:"tempo"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	PreviewURL   string         `json:"preview_url"`
	ImageURL     string         `json:"image_url"`
	CreatedAt    time.Time      `json:"created_at"`
}
