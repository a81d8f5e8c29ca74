package repository

import (
	"context"
	"errors"

	"swarloop/internal/database"
	"swarloop/internal/models"

	"gorm.io/gorm"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type RecommendationRepository interface {
	CreateRecommendation(ctx context.Context, rec *models.Recommendation) error
	GetRecommendationByID(ctx context.Context, id string, userID uint) (*models.Recommendation, error)
	GetRecommendationsByUser(ctx context.Context, userID uint, limit int) ([]models.Recommendation, error)
}

type recommendationRepo struct {
	db *gorm.DB
}

func NewRecommendationRepository() RecommendationRepository {
	return &recommendationRepo{db: database.DB}
}

// CreateRecommendation writes the recommendation and its ordered track
// entries in one transaction so readers never see a partial record.
func (r *recommendationRepo) CreateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tracks := rec.Tracks
		rec.Tracks = nil

		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		for i := range tracks {
			tracks[i].RecommendationID = rec.ID
		}
		if len(tracks) > 0 {
			if err := tx.Create(&tracks).Error; err != nil {
				return err
			}
		}

		rec.Tracks = tracks
		return nil
	})
}

func (r *recommendationRepo) GetRecommendationByID(ctx context.Context, id string, userID uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.db.WithContext(ctx).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"rank" ASC`)
		}).
		Preload("Tracks.Track").
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepo) GetRecommendationsByUser(ctx context.Context, userID uint, limit int) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.WithContext(ctx).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"rank" ASC`)
		}).
		Preload("Tracks.Track").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return recs, nil
}
