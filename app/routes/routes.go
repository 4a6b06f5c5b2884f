package routes

import (
	"net/http"

	"todo-app/app/controllers"
	"todo-app/app/web"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application. Anything outside
// /api is served from the embedded front-end bundle.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController) {
	router.HandleFunc("/api/tasks", taskController.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks/{id:[0-9]+}", taskController.UpdateTask).Methods(http.MethodPut)
	router.HandleFunc("/api/tasks/{id:[0-9]+}", taskController.DeleteTask).Methods(http.MethodDelete)
	router.PathPrefix("/").Handler(http.FileServer(http.FS(web.Assets()))).Methods(http.MethodGet)
}
