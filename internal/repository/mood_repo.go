package repository

import (
	"context"

	"swarloop/internal/database"
	"swarloop/internal/models"

	"gorm.io/gorm"
)

// MoodEventRepository is append-only: mood events are audit facts and
// there is deliberately no update or delete path.
type MoodEventRepository interface {
	CreateMoodEvent(ctx context.Context, event *models.MoodEvent) error
	GetMoodEventsByUser(ctx context.Context, userID uint, limit int) ([]models.MoodEvent, error)
}

type moodEventRepo struct {
	db *gorm.DB
}

func NewMoodEventRepository() MoodEventRepository {
	return &moodEventRepo{db: database.DB}
}

func (r *moodEventRepo) CreateMoodEvent(ctx context.Context, event *models.MoodEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *moodEventRepo) GetMoodEventsByUser(ctx context.Context, userID uint, limit int) ([]models.MoodEvent, error) {
	var events []models.MoodEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.MoodEvent{}
	}
	return events, nil
}
