package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewRenameCmd(st **store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-title>",
		Short: "Rename a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st
			if err := s.Rename(args[0], args[1]); err != nil {
				return fmt.Errorf("rename page: %w", err)
			}
			fmt.Printf("Renamed %s to %s\n", args[0], args[1])
			return nil
		},
	}
}
