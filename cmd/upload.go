package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
	"video-catalog/pkg/services"
)

// Command options
var (
	listUploads   bool
	uploadTimeout time.Duration
)

// newUploadCmd creates a new command for uploading catalogs to Cloud Storage
func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [file]",
		Short: "Upload a catalog file to Google Cloud Storage",
		Long: `Upload a generated catalog file to the bucket named by BUCKET_NAME under the
catalogs/ prefix. Without a file argument the variant's output file is uploaded.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if err := cfg.RequireBucket(); err != nil {
				log.Fatal(err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), uploadTimeout)
			defer cancel()

			if listUploads {
				if err := printUploads(ctx, cmd.OutOrStdout(), cfg); err != nil {
					log.Fatalf("Failed to list uploads: %v", err)
				}
				return
			}

			file := cfg.OutputFile
			if len(args) > 0 {
				file = args[0]
			}
			if err := uploadFile(ctx, cmd.OutOrStdout(), cfg, file); err != nil {
				log.Fatalf("Failed to upload catalog: %v", err)
			}
		},
	}

	cmd.Flags().BoolVarP(&listUploads, "list", "l", false, "List catalogs already uploaded to the bucket")
	cmd.Flags().DurationVarP(&uploadTimeout, "timeout", "t", 2*time.Minute, "Timeout for the storage request")

	return cmd
}

// uploadFile validates a local catalog file and uploads it
func uploadFile(ctx context.Context, out io.Writer, cfg *config.Config, src string) error {
	data, err := afero.ReadFile(services.Fs(), src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	// Refuse to upload anything that is not a catalog document
	catalog, err := services.DecodeCatalog(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	object := services.ObjectName(src)
	fmt.Fprintf(out, "Uploading %s (%d playlists, %d videos, %s) to gs://%s/%s... ",
		src, len(catalog.Playlists), services.TotalVideos(catalog),
		services.FormatSize(int64(len(data))), cfg.BucketName, object)

	if err := services.UploadCatalog(ctx, cfg.BucketName, object, data); err != nil {
		fmt.Fprintln(out, "Failed")
		return err
	}

	fmt.Fprintln(out, "Done")
	return nil
}

// printUploads lists catalogs stored in the bucket
func printUploads(ctx context.Context, out io.Writer, cfg *config.Config) error {
	uploads, err := services.ListUploads(ctx, cfg.BucketName)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Uploaded catalogs in gs://%s:\n", cfg.BucketName)
	fmt.Fprintln(out, "==========================")
	for _, u := range uploads {
		fmt.Fprintf(out, "%s  %10s  %s\n", u.Updated.Format(time.RFC3339), services.FormatSize(u.Size), u.Name)
	}
	fmt.Fprintf(out, "Total: %d catalogs\n", len(uploads))
	return nil
}
