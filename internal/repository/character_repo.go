package repository

import (
	"context"
	"errors"

	"github.com/partykeep/partykeep/internal/model"
	"gorm.io/gorm"
)

type CharacterRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]model.Character, error)
	GetByOwner(ctx context.Context, userID string, id uint) (*model.Character, error)
	Create(ctx context.Context, character *model.Character) error
	Update(ctx context.Context, userID string, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, userID string, id uint) error
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) ListByOwner(ctx context.Context, userID string) ([]model.Character, error) {
	// Allocated up front so an owner with no rows serializes as [], not null.
	characters := []model.Character{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) GetByOwner(ctx context.Context, userID string, id uint) (*model.Character, error) {
	var character model.Character
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&character).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) Create(ctx context.Context, character *model.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *characterRepository) Update(ctx context.Context, userID string, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Character{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *characterRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Character{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ErrNotFound
	}
	return nil
}
