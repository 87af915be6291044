package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/cmd"
	"github.com/mattsolo1/grove-pages/cmd/config"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

var st *store.Store

func main() {
	rootCmd := &cobra.Command{
		Use:   "pages",
		Short: "A hierarchical page workspace with a split-pane layout",
		Long: `pages organizes documents into a folder hierarchy and lays them out
in a resizable, tabbed multi-pane view. Page metadata lives in a local
SQLite store; page bodies are plain markdown files.`,
		SilenceUsage: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Runs once before any subcommand.
		config.InitConfig()

		var err error
		st, err = config.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if st != nil {
			st.Close()
		}
	}

	rootCmd.AddCommand(cmd.NewNewCmd(&st))
	rootCmd.AddCommand(cmd.NewListCmd(&st))
	rootCmd.AddCommand(cmd.NewMoveCmd(&st))
	rootCmd.AddCommand(cmd.NewRenameCmd(&st))
	rootCmd.AddCommand(cmd.NewRmCmd(&st))
	rootCmd.AddCommand(cmd.NewImportCmd(&st))
	rootCmd.AddCommand(cmd.NewExportCmd(&st))
	rootCmd.AddCommand(cmd.NewLayoutCmd(&st))
	rootCmd.AddCommand(cmd.NewTuiCmd(&st))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
