package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/cmd/config"
	"github.com/mattsolo1/grove-pages/internal/tui"
	"github.com/mattsolo1/grove-pages/pkg/models"
	"github.com/mattsolo1/grove-pages/pkg/store"
	"github.com/mattsolo1/grove-pages/pkg/watcher"
	"github.com/mattsolo1/grove-pages/pkg/workspace"
)

// NewTuiCmd creates the `pages tui` command.
func NewTuiCmd(st **store.Store) *cobra.Command {
	var workspaceName string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive workspace view",
		Long: `Launch the interactive terminal view: the page hierarchy in a sidebar
and the split-pane tab layout in the main area. The layout is persisted
per workspace and restored on the next launch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("tui mode requires an interactive terminal")
			}

			s := *st

			log := logrus.New()
			log.SetOutput(os.Stderr)
			log.SetLevel(logrus.WarnLevel)

			coord := workspace.New(workspaceName, config.SortMode(), s, log)

			pages, err := s.List()
			if err != nil {
				return fmt.Errorf("list pages: %w", err)
			}
			coord.Reload(pages)

			// Watch the pages directory so external edits show up without a
			// manual refresh. A missing directory just disables the watcher.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var changes <-chan struct{}
			if dir := config.PagesDir(); dir != "" {
				if ch, err := watcher.Watch(ctx, dir, log); err != nil {
					log.Warnf("watch pages dir: %v", err)
				} else {
					changes = ch
				}
			}

			load := func() ([]*models.Page, error) {
				if _, err := s.ImportDir(config.PagesDir()); err != nil {
					log.Warnf("rescan pages dir: %v", err)
				}
				return s.List()
			}

			model := tui.New(coord, load, changes)
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceName, "workspace", "w", "", "Workspace name (default is default)")

	return cmd
}
