package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewRmCmd(st **store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a page",
		Long: `Delete a page permanently. Children of the deleted page are not
removed; they surface at the root level until reparented.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st
			p, err := s.Get(args[0])
			if err != nil {
				return err
			}
			if err := s.Delete(args[0]); err != nil {
				return fmt.Errorf("delete page: %w", err)
			}
			fmt.Printf("Deleted: %s\n", p.Title)
			return nil
		},
	}
}
