package storage

import (
	"context"
	"errors"

	"todo-app/app/models"
)

// ErrNotFound is returned when the referenced task id does not exist.
var ErrNotFound = errors.New("Task not found")

// TaskStore is the narrow data-access interface the service layer depends on.
// The implementation is opened at startup, closed at shutdown and injected
// into the service.
type TaskStore interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, title, description string) (models.Task, error)
	Update(ctx context.Context, id int64, title, description string, completed bool) (models.Task, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}
