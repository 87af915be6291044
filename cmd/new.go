package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/pkg/models"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewNewCmd(st **store.Store) *cobra.Command {
	var (
		pageID string
		parent string
		folder bool
		order  int
		tags   []string
	)

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new page",
		Long: `Create a new page in the workspace.

Examples:
  pages new "Meeting notes"
  pages new "Projects" --folder
  pages new "API design" --parent <folder-id>
  pages new "Sprint tasks" --tags work,planning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st

			id := pageID
			if id == "" {
				id = uuid.NewString()
			}

			p := &models.Page{
				ID:        id,
				Title:     args[0],
				Parent:    parent,
				IsFolder:  folder,
				SortOrder: order,
				Tags:      tags,
			}

			if parent != "" {
				if _, err := s.Get(parent); err != nil {
					return fmt.Errorf("parent: %w", err)
				}
			}

			if err := s.Save(p); err != nil {
				return fmt.Errorf("save page: %w", err)
			}

			fmt.Printf("Created: %s (%s)\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&pageID, "id", "", "Explicit page id (default is a generated uuid)")
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Parent page id (default is root level)")
	cmd.Flags().BoolVarP(&folder, "folder", "f", false, "Create a folder page")
	cmd.Flags().IntVar(&order, "order", 0, "Explicit sibling sort order")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated tags")

	return cmd
}
