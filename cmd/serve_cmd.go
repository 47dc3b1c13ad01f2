package cmd

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
	"video-catalog/pkg/handlers"
	"video-catalog/pkg/services"
)

// newServeCmd creates a new command for serving the catalog
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server to serve a generated catalog via HTTP. The catalog is
cached for CATALOG_CACHE_TTL and regenerated afterwards.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if err := cfg.RequireServer(); err != nil {
				log.Fatal(err)
			}
			serveWebsite(cfg, services.InitService(cfg))
		},
	}
}

// serveWebsite runs the web server to serve the catalog
func serveWebsite(cfg *config.Config, svc *services.Service) {
	mux := handlers.NewMux(svc)

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
