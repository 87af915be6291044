package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/cmd/config"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewImportCmd(st **store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "import [dir]",
		Short: "Import pages from a markdown directory",
		Long: `Scan a directory of markdown files and import every page found in
their frontmatter. Defaults to the configured pages directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st
			dir := config.PagesDir()
			if len(args) == 1 {
				dir = args[0]
			}

			n, err := s.ImportDir(dir)
			if err != nil {
				return fmt.Errorf("import pages: %w", err)
			}
			fmt.Printf("Imported %d pages from %s\n", n, dir)
			return nil
		},
	}
}
