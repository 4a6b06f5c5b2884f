package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"todo-app/app/models"
	"todo-app/app/services"
)

// TaskService is the slice of the service layer the controller depends on.
type TaskService interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, title, description string) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, title, description string, completed bool) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service TaskService) *TaskController {
	return &TaskController{Service: service}
}

// taskRequest is the body of both create and update requests. Update reads
// all three fields; create ignores Completed.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// GetTasks handles GET /api/tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Service.GetTasks(r.Context())
	if err != nil {
		log.WithError(err).Error("listing tasks failed")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /api/tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := c.Service.CreateTask(r.Context(), req.Title, req.Description)
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		log.WithError(err).Error("creating task failed")
		respondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		respondWithJSON(w, http.StatusCreated, task)
	}
}

// UpdateTask handles PUT /api/tasks/{id}.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		respondWithError(w, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := c.Service.UpdateTask(r.Context(), id, req.Title, req.Description, req.Completed)
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case err != nil:
		log.WithError(err).Error("updating task failed")
		respondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		respondWithJSON(w, http.StatusOK, task)
	}
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		respondWithError(w, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	err = c.Service.DeleteTask(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case err != nil:
		log.WithError(err).Error("deleting task failed")
		respondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
	}
}

func taskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
