package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
	"video-catalog/pkg/services"
)

// newExportCmd creates a new command for exporting catalog data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export a generated catalog",
		Long:  `Generate a catalog and print it in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if err := exportData(cmd.OutOrStdout(), cfg, format); err != nil {
				log.Fatal(err)
			}
		},
	}
}

// exportData writes a freshly generated catalog to out
func exportData(out io.Writer, cfg *config.Config, format string) error {
	if format != "json" {
		return fmt.Errorf("unsupported export format: %s (supported formats: json)", format)
	}

	catalog := services.NewGenerator(cfg.Variant, cfg.Seed).Catalog(cfg.VideosPerCategory)
	data, err := services.EncodeCatalog(catalog)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
