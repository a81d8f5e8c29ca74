package repository

import (
	"context"
	"errors"

	"swarloop/internal/database"
	"swarloop/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrTrackNotFound = errors.New("track not found")

type TrackRepository interface {
	CreateTrack(track *models.Track) error
	CreateTracks(tracks []models.Track) error
	GetTrackByID(id string) (*models.Track, error)
	GetAllTracks() ([]models.Track, error)
	FindActiveByMoodTags(ctx context.Context, tags []string, limit int) ([]models.Track, error)
	CountTracks() (int64, error)
}

type trackRepo struct {
	db *gorm.DB
}

func NewTrackRepository() TrackRepository {
	return &trackRepo{db: database.DB}
}

func (r *trackRepo) CreateTrack(track *models.Track) error {
	return r.db.Create(track).Error
}

func (r *trackRepo) CreateTracks(tracks []models.Track) error {
	if len(tracks) == 0 {
		return nil
	}
	return r.db.Create(&tracks).Error
}

func (r *trackRepo) GetTrackByID(id string) (*models.Track, error) {
	var track models.Track
	err := r.db.First(&track, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return &track, nil
}

func (r *trackRepo) GetAllTracks() ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Order("created_at DESC").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

// FindActiveByMoodTags selects active tracks whose mood tags overlap the
// target set. No ordering contract; that is the ranker's job.
func (r *trackRepo) FindActiveByMoodTags(ctx context.Context, tags []string, limit int) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND mood_tags && ?", true, pq.StringArray(tags)).
		Limit(limit).
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) CountTracks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Track{}).Count(&count).Error
	return count, err
}
