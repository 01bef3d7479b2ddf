package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
)

// TaskInput holds the creatable task fields.
type TaskInput struct {
	TaskName string
	Status   string
	Notes    string
}

// TaskUpdate carries only the fields the caller actually sent; nil means
// "leave it alone". This is the allow-list of columns an update may touch.
type TaskUpdate struct {
	TaskName *string
	Status   *string
	Notes    *string
}

type TaskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, userID string, id uint) (*model.Task, error) {
	task, err := s.tasks.GetByOwner(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	task := &model.Task{
		UserID:   userID,
		TaskName: input.TaskName,
		Status:   input.Status,
		Notes:    input.Notes,
	}
	if task.Status == "" {
		task.Status = "open"
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID string, id uint, update TaskUpdate) error {
	fields := map[string]interface{}{}
	if update.TaskName != nil {
		fields["task_name"] = *update.TaskName
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}

	err := s.tasks.Update(ctx, userID, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, userID string, id uint) error {
	err := s.tasks.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}
