package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/config"
	"video-catalog/pkg/services"
)

// newShowPlaylistCmd creates a new command for showing a generated playlist
func newShowPlaylistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-playlist [category]",
		Short: "Generate and show the videos of one playlist",
		Long: `Generate a single playlist for the given category and print its videos.
Categories the variant does not know use the generic title template.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			showPlaylist(cmd.OutOrStdout(), cfg, args[0])
		},
	}
}

// showPlaylist displays details about a generated playlist
func showPlaylist(out io.Writer, cfg *config.Config, category string) {
	if !cfg.Variant.HasCategory(category) {
		log.Warnf("Category %q is not part of the %s variant, using generic titles", category, cfg.Variant.Name)
	}

	playlist := services.NewGenerator(cfg.Variant, cfg.Seed).Playlist(category, cfg.VideosPerCategory)

	fmt.Fprintf(out, "Playlist: %s\n", playlist.Name)
	fmt.Fprintf(out, "Videos: %d\n", len(playlist.Videos))
	fmt.Fprintln(out, "================")

	for i, video := range playlist.Videos {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, video.Title, video.Duration)
		fmt.Fprintf(out, "   ID: %s  Views: %s  Uploaded: %s\n", video.ID, video.Views, video.UploadDate)
		fmt.Fprintf(out, "   Thumbnail: %s\n", video.Thumbnail)
		fmt.Fprintln(out)
	}
}
