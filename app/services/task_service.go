package services

import (
	"context"
	"errors"
	"strings"

	"todo-app/app/models"
	"todo-app/app/storage"
)

// TaskService handles task-related operations on top of the task store.
type TaskService struct {
	store storage.TaskStore
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(store storage.TaskStore) *TaskService {
	return &TaskService{store: store}
}

// GetTasks retrieves all tasks, newest first. An empty list is a valid result.
func (s *TaskService) GetTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.List(ctx)
}

// CreateTask validates and persists a new task. The title must contain at
// least one non-whitespace character; both fields are stored exactly as
// submitted.
func (s *TaskService) CreateTask(ctx context.Context, title, description string) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, ErrTitleRequired
	}
	return s.store.Create(ctx, title, description)
}

// UpdateTask overwrites every mutable field of an existing task. Callers must
// resend the full representation; there is no partial patching. The title
// rule from CreateTask applies here as well.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, title, description string, completed bool) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, ErrTitleRequired
	}
	task, err := s.store.Update(ctx, id, title, description, completed)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Task{}, ErrNotFound
	}
	return task, err
}

// DeleteTask permanently removes a task. There is no soft delete.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
