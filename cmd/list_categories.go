package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"video-catalog/pkg/variants"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List the categories of the selected variant",
		Long:  `List every category of the selected variant with its title templates.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			listCategories(cmd.OutOrStdout(), cfg.Variant)
		},
	}
}

// listCategories displays all categories and their templates
func listCategories(out io.Writer, variant variants.Variant) {
	fmt.Fprintf(out, "Categories (%s):\n", variant.Name)
	fmt.Fprintln(out, "================")

	for _, category := range variant.Categories {
		fmt.Fprintf(out, "%s\n", category.Name)
		for _, template := range category.Templates {
			fmt.Fprintf(out, "  - %s\n", template)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d categories\n", len(variant.Categories))
}
