package repository

import (
	"context"
	"errors"

	"github.com/partykeep/partykeep/internal/model"
	"gorm.io/gorm"
)

// TaskRepository is owner-scoped: every method takes the owning user id and
// folds it into the WHERE clause, so a caller can never reach another user's
// rows.
type TaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]model.Task, error)
	GetByOwner(ctx context.Context, userID string, id uint) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, userID string, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, userID string, id uint) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListByOwner(ctx context.Context, userID string) ([]model.Task, error) {
	// Allocated up front: Find leaves a nil slice alone on zero rows, and a
	// nil slice serializes as JSON null instead of the [] clients expect.
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetByOwner(ctx context.Context, userID string, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) Update(ctx context.Context, userID string, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
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

func (r *taskRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ErrNotFound
	}
	return nil
}
