package repository

import (
	"errors"
	"time"

	"swarloop/internal/database"
	"swarloop/internal/models"

	"gorm.io/gorm"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository maintains at most one active refresh token per
// user. Replace is the only write path for issuance and rotation.
type RefreshTokenRepository interface {
	Replace(userID uint, token string, expiresAt time.Time) error
	FindByToken(token string) (*models.RefreshToken, error)
	DeleteByUserID(userID uint) error
}

type refreshTokenRepo struct {
	db *gorm.DB
}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepo{db: database.DB}
}

func (r *refreshTokenRepo) Replace(userID uint, token string, expiresAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.RefreshToken{
			UserID:    userID,
			Token:     token,
			ExpiresAt: expiresAt,
		}).Error
	})
}

func (r *refreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.Where("token = ?", token).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepo) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
