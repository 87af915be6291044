package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/pkg/panes"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewLayoutCmd(st **store.Store) *cobra.Command {
	var (
		workspace  string
		layoutJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the persisted pane layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st

			record, err := s.LoadLayout(workspace)
			if err != nil {
				return fmt.Errorf("load layout: %w", err)
			}

			if layoutJSON {
				if record == nil {
					fmt.Println("{}")
					return nil
				}
				fmt.Println(string(record))
				return nil
			}

			tree, active, err := panes.UnmarshalRecord(record)
			if err != nil {
				return fmt.Errorf("decode layout: %w", err)
			}

			printLayout(tree, active, 0)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace name (default is default)")
	cmd.Flags().BoolVar(&layoutJSON, "json", false, "Output the raw layout record")

	return cmd
}

func printLayout(n panes.Node, activePane string, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *panes.Leaf:
		marker := ""
		if v.ID == activePane {
			marker = " *"
		}
		fmt.Printf("%spane %s%s\n", indent, v.ID, marker)
		for _, tab := range v.Tabs {
			sel := " "
			if tab.ID == v.ActiveTabID {
				sel = ">"
			}
			fmt.Printf("%s  %s %s (%s)\n", indent, sel, tab.Title, tab.ID)
		}
	case *panes.Split:
		fmt.Printf("%ssplit %s %.2f\n", indent, v.Direction, v.Ratio)
		printLayout(v.First, activePane, depth+1)
		printLayout(v.Second, activePane, depth+1)
	}
}
