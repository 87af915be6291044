package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewMoveCmd(st **store.Store) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "move <id> [new-parent-id]",
		Short: "Move a page to a different parent",
		Long: `Move a page under a new parent, or to the root level when no parent
is given. Moving a page under itself or one of its own descendants is
rejected.

Examples:
  pages move <id> <folder-id>   # Reparent under a folder
  pages move <id>               # Move to root level
  pages move <id> --order 3     # Keep parent, set sibling position`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st
			id := args[0]

			orderOnly := cmd.Flags().Changed("order") && len(args) == 1

			if cmd.Flags().Changed("order") {
				if err := s.SetSortOrder(id, order); err != nil {
					return fmt.Errorf("set sort order: %w", err)
				}
			}

			if !orderOnly {
				parent := ""
				if len(args) == 2 {
					parent = args[1]
				}
				if err := s.Move(id, parent); err != nil {
					return fmt.Errorf("move page: %w", err)
				}
			}

			p, err := s.Get(id)
			if err != nil {
				return err
			}
			switch {
			case orderOnly:
				fmt.Printf("Reordered %s to position %d\n", p.Title, order)
			case p.Parent == "":
				fmt.Printf("Moved %s to root level\n", p.Title)
			default:
				fmt.Printf("Moved %s under %s\n", p.Title, p.Parent)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&order, "order", 0, "Explicit sibling sort order")

	return cmd
}
