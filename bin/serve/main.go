package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"video-catalog/pkg/config"
	"video-catalog/pkg/handlers"
	"video-catalog/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.RequireServer(); err != nil {
		log.Fatal(err)
	}

	// Set up HTTP handlers over the default service
	mux := handlers.NewMux(services.InitService(cfg))

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
