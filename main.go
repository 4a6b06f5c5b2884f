package main

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"todo-app/app/config"
	"todo-app/app/controllers"
	"todo-app/app/middleware"
	"todo-app/app/routes"
	"todo-app/app/services"
	"todo-app/app/storage"
)

func main() {
	cfg := config.Load()
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// Initialize the storage layer
	store, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()

	// Initialize the service layer
	taskService := services.NewTaskService(store)

	// Initialize the controller layer
	taskController := controllers.NewTaskController(taskService)

	// Setup HTTP server
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.RegisterRoutes(router, taskController)

	log.Infof("server is running on http://0.0.0.0%s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}
