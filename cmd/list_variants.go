package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"video-catalog/pkg/variants"
)

// newListVariantsCmd creates a new command for listing catalog variants
func newListVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-variants",
		Short: "List all catalog variants",
		Long:  `List every catalog variant with its date range, numbering, count and output file.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listVariants(cmd.OutOrStdout())
		},
	}
}

// listVariants displays the registered variants
func listVariants(out io.Writer) {
	names := variants.Names()

	fmt.Fprintln(out, "Catalog Variants:")
	fmt.Fprintln(out, "=================")

	for _, name := range names {
		v, _ := variants.Lookup(name)
		marker := ""
		if name == variants.DefaultName {
			marker = " (default)"
		}
		count := fmt.Sprintf("%d (fixed)", v.DefaultCount)
		if v.CountFromEnv {
			count = fmt.Sprintf("%d (VIDEOS_PER_CATEGORY)", v.DefaultCount)
		}

		fmt.Fprintf(out, "%s%s\n", name, marker)
		fmt.Fprintf(out, "  Categories: %s\n", strings.Join(v.CategoryNames(), ", "))
		fmt.Fprintf(out, "  Dates: %s to %s\n", v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"))
		fmt.Fprintf(out, "  Numbering: %s\n", v.Numbering)
		fmt.Fprintf(out, "  Videos per category: %s\n", count)
		fmt.Fprintf(out, "  Output: %s\n", v.OutputFile)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d variants\n", len(names))
}
