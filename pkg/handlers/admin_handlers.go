package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"video-catalog/pkg/config"
	"video-catalog/pkg/services"
)

// RegenerateHandler handles API requests to drop the cached catalog
func RegenerateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Println("Regenerating catalog")
	service.Regenerate()
	catalog := service.GetCatalog()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Catalog regenerated successfully",
		"playlists": len(catalog.Playlists),
		"videos":    services.TotalVideos(catalog),
	})
}

// UploadHandler handles API requests to write and upload the current catalog
func UploadHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		log.Printf("Uploading catalog to bucket %q", cfg.BucketName)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
		defer cancel()

		object, err := service.PublishCatalog(ctx)
		if errors.Is(err, config.ErrBucketNameNotSet) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Printf("Error uploading catalog: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Catalog uploaded successfully",
			"object":  object,
		})
	}
}
