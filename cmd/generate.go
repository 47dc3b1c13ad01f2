package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
	"video-catalog/pkg/models"
	"video-catalog/pkg/services"
)

// Command options
var outputPath string

// newGenerateCmd creates a new command for generating the catalog file
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the catalog JSON file",
		Long: `Generate a catalog with one playlist per category of the selected variant and
write it as pretty-printed JSON. The streaming variant reads VIDEOS_PER_CATEGORY
(default 200); the classic variant always generates 150 videos per category.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if outputPath != "" {
				cfg.OutputFile = outputPath
			}
			if _, err := generateCatalogFile(cmd.OutOrStdout(), cfg); err != nil {
				log.Fatalf("Failed to generate catalog: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to the variant's file name or CATALOG_OUTPUT)")

	return cmd
}

// generateCatalogFile generates, writes and summarizes a catalog
func generateCatalogFile(out io.Writer, cfg *config.Config) (models.Catalog, error) {
	fmt.Fprintf(out, "Generating %d videos per category...\n", cfg.VideosPerCategory)

	generator := services.NewGenerator(cfg.Variant, cfg.Seed)
	catalog := generator.Catalog(cfg.VideosPerCategory)

	fmt.Fprintf(out, "Generated %d total videos across %d categories\n",
		services.TotalVideos(catalog), len(catalog.Playlists))

	if err := services.WriteCatalog(cfg.OutputFile, catalog); err != nil {
		return catalog, err
	}
	log.Debugf("Wrote %s", cfg.OutputFile)

	fmt.Fprintf(out, "✅ %s generated successfully!\n", cfg.OutputFile)
	printSummary(out, catalog)

	return catalog, nil
}

// printSummary prints the per-playlist video counts
func printSummary(out io.Writer, catalog models.Catalog) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📊 Summary:")
	for _, playlist := range catalog.Playlists {
		fmt.Fprintf(out, "  %s: %d videos\n", playlist.Name, len(playlist.Videos))
	}
}
