package repository

import (
	"context"
	"errors"
	"time"

	"github.com/partykeep/partykeep/internal/model"
	"gorm.io/gorm"
)

// DBTokenStore is the database-backed refresh-token store. Unlike the
// in-memory default it survives process restarts and works when more than
// one instance serves traffic. Satisfies auth.TokenStore.
type DBTokenStore struct {
	db *gorm.DB
}

func NewDBTokenStore(db *gorm.DB) *DBTokenStore {
	return &DBTokenStore{db: db}
}

func (s *DBTokenStore) Register(ctx context.Context, token, userID string, expiresAt time.Time) error {
	row := model.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *DBTokenStore) Revoke(ctx context.Context, token string) error {
	// Idempotent: deleting an absent token is not an error.
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&model.RefreshToken{}).Error
}

func (s *DBTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	var row model.RefreshToken
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if time.Now().After(row.ExpiresAt) {
		return false, nil
	}
	return true, nil
}

func (s *DBTokenStore) Sweep(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&model.RefreshToken{})
	return result.RowsAffected, result.Error
}
