package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-app/app/models"
	"todo-app/app/storage"
)

// --- fakes ---

type fakeStore struct {
	listFn   func(context.Context) ([]models.Task, error)
	createFn func(context.Context, string, string) (models.Task, error)
	updateFn func(context.Context, int64, string, string, bool) (models.Task, error)
	deleteFn func(context.Context, int64) error
}

func (s *fakeStore) List(ctx context.Context) ([]models.Task, error) {
	return s.listFn(ctx)
}

func (s *fakeStore) Create(ctx context.Context, title, description string) (models.Task, error) {
	return s.createFn(ctx, title, description)
}

func (s *fakeStore) Update(ctx context.Context, id int64, title, description string, completed bool) (models.Task, error) {
	return s.updateFn(ctx, id, title, description, completed)
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *fakeStore) Close() error { return nil }

// --- tests ---

func TestCreateTask_EmptyTitle(t *testing.T) {
	svc := NewTaskService(&fakeStore{
		createFn: func(context.Context, string, string) (models.Task, error) {
			t.Fatalf("Create() should not be called on an empty title")
			return models.Task{}, nil
		},
	})

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateTask(context.Background(), title, "desc")
		if !errors.Is(err, ErrTitleRequired) {
			t.Fatalf("CreateTask(%q) err=%v, want %v", title, err, ErrTitleRequired)
		}
	}
}

func TestCreateTask_Success(t *testing.T) {
	var gotTitle, gotDescription string
	svc := NewTaskService(&fakeStore{
		createFn: func(_ context.Context, title, description string) (models.Task, error) {
			gotTitle, gotDescription = title, description
			return models.Task{ID: 1, Title: title, Description: description, CreatedAt: time.Now()}, nil
		},
	})

	task, err := svc.CreateTask(context.Background(), "Buy milk", "2 liters")
	if err != nil {
		t.Fatalf("CreateTask() err=%v, want nil", err)
	}
	if task.ID != 1 || task.Completed {
		t.Fatalf("CreateTask() task=%+v, want id=1 completed=false", task)
	}
	// Fields must reach the store exactly as submitted, no trimming
	if gotTitle != "Buy milk" || gotDescription != "2 liters" {
		t.Fatalf("store received title=%q description=%q", gotTitle, gotDescription)
	}
}

func TestUpdateTask_EmptyTitle(t *testing.T) {
	svc := NewTaskService(&fakeStore{
		updateFn: func(context.Context, int64, string, string, bool) (models.Task, error) {
			t.Fatalf("Update() should not be called on an empty title")
			return models.Task{}, nil
		},
	})

	_, err := svc.UpdateTask(context.Background(), 1, "  ", "desc", true)
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("UpdateTask() err=%v, want %v", err, ErrTitleRequired)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc := NewTaskService(&fakeStore{
		updateFn: func(context.Context, int64, string, string, bool) (models.Task, error) {
			return models.Task{}, storage.ErrNotFound
		},
	})

	_, err := svc.UpdateTask(context.Background(), 42, "Title", "", false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateTask() err=%v, want %v", err, ErrNotFound)
	}
}

func TestUpdateTask_Success(t *testing.T) {
	created := time.Now()
	svc := NewTaskService(&fakeStore{
		updateFn: func(_ context.Context, id int64, title, description string, completed bool) (models.Task, error) {
			return models.Task{ID: id, Title: title, Description: description, Completed: completed, CreatedAt: created}, nil
		},
	})

	task, err := svc.UpdateTask(context.Background(), 7, "Title", "Desc", true)
	if err != nil {
		t.Fatalf("UpdateTask() err=%v, want nil", err)
	}
	if task.ID != 7 || !task.Completed || !task.CreatedAt.Equal(created) {
		t.Fatalf("UpdateTask() task=%+v", task)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	svc := NewTaskService(&fakeStore{
		deleteFn: func(context.Context, int64) error { return storage.ErrNotFound },
	})

	if err := svc.DeleteTask(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTask() err=%v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	var deleted int64
	svc := NewTaskService(&fakeStore{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	if err := svc.DeleteTask(context.Background(), 3); err != nil {
		t.Fatalf("DeleteTask() err=%v, want nil", err)
	}
	if deleted != 3 {
		t.Fatalf("store deleted id=%d, want 3", deleted)
	}
}

func TestGetTasks_PassesThroughStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewTaskService(&fakeStore{
		listFn: func(context.Context) ([]models.Task, error) { return nil, storeErr },
	})

	_, err := svc.GetTasks(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("GetTasks() err=%v, want %v", err, storeErr)
	}
}
