package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/cmd/config"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewExportCmd(st **store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Export pages to a markdown directory",
		Long: `Write one markdown stub per stored page, carrying the page record
in its frontmatter. Defaults to the configured pages directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st
			dir := config.PagesDir()
			if len(args) == 1 {
				dir = args[0]
			}

			n, err := s.ExportDir(dir)
			if err != nil {
				return fmt.Errorf("export pages: %w", err)
			}
			fmt.Printf("Exported %d pages to %s\n", n, dir)
			return nil
		},
	}
}
