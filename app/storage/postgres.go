package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"todo-app/app/models"
)

//go:embed schema.sql
var schemaSQL string

// Postgres implements TaskStore on top of a single *sql.DB handle.
type Postgres struct {
	db *sql.DB
}

// Open connects to Postgres, verifies the connection and ensures the tasks
// table exists.
func Open(databaseURL string) (*Postgres, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// List returns every task ordered by creation time, newest first.
func (p *Postgres) List(ctx context.Context) ([]models.Task, error) {
	rows, err := p.db.QueryContext(ctx,
		"SELECT id, title, description, completed, created_at FROM tasks ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create inserts a new task and returns it with the storage-assigned id and
// creation timestamp. New tasks always start out incomplete.
func (p *Postgres) Create(ctx context.Context, title, description string) (models.Task, error) {
	t := models.Task{Title: title, Description: description}
	err := p.db.QueryRowContext(ctx,
		"INSERT INTO tasks (title, description) VALUES ($1, $2) RETURNING id, completed, created_at",
		title, description,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt)
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Update overwrites the mutable fields of the task with the given id. The id
// and creation timestamp never change.
func (p *Postgres) Update(ctx context.Context, id int64, title, description string, completed bool) (models.Task, error) {
	t := models.Task{ID: id, Title: title, Description: description, Completed: completed}
	err := p.db.QueryRowContext(ctx,
		"UPDATE tasks SET title = $1, description = $2, completed = $3 WHERE id = $4 RETURNING created_at",
		title, description, completed, id,
	).Scan(&t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Delete permanently removes the task with the given id.
func (p *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := p.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
