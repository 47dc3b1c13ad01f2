package cmd

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
)

// Configuration flags
var (
	variantName string
	videoCount  int
	countSet    bool
	seed        int64
	secretKey   string
	bucketName  string
	portNumber  string
	logLevel    string
	logJSON     bool
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "video-catalog",
		Short: "Video Catalog generates fake video playlists as JSON",
		Long: `Video Catalog is a command line application that synthesizes video metadata
(titles, durations, view counts, upload dates and thumbnails) grouped into playlists.
It can write the catalog to disk, upload it to Google Cloud Storage, or serve it over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// any explicit --count reaches config validation, negatives included
			countSet = cmd.Flags().Changed("count")
			return setupLogging(logLevel, logJSON)
		},
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&variantName, "variant", "V", "", "Set the CATALOG_VARIANT (overrides environment variable)")
	rootCmd.PersistentFlags().IntVarP(&videoCount, "count", "n", 0, "Set VIDEOS_PER_CATEGORY (overrides environment variable)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Set CATALOG_SEED for reproducible output (0 means random)")
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "s", "", "Set the SECRET_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")

	// Add commands to root
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListVariantsCmd())
	rootCmd.AddCommand(newShowPlaylistCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newUploadCmd())

	return rootCmd
}

// setupLogging configures logrus for the process
func setupLogging(level string, asJSON bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	if asJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if variantName != "" {
		os.Setenv(config.EnvVariant, variantName)
	}

	if countSet {
		os.Setenv(config.EnvVideosPerCategory, strconv.Itoa(videoCount))
	}

	if seed != 0 {
		os.Setenv(config.EnvSeed, strconv.FormatInt(seed, 10))
	}

	if secretKey != "" {
		os.Setenv(config.EnvSecretKey, secretKey)
	}

	if bucketName != "" {
		os.Setenv(config.EnvBucketName, bucketName)
	}

	if portNumber != "" {
		os.Setenv(config.EnvPort, portNumber)
	}

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.EnvCountIgnored() {
		log.Warnf("%s is ignored by the %s variant (fixed at %d per category)",
			config.EnvVideosPerCategory, cfg.Variant.Name, cfg.VideosPerCategory)
	}
	return cfg, nil
}
