package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pages/cmd/config"
	"github.com/mattsolo1/grove-pages/pkg/hierarchy"
	"github.com/mattsolo1/grove-pages/pkg/models"
	"github.com/mattsolo1/grove-pages/pkg/store"
)

func NewListCmd(st **store.Store) *cobra.Command {
	var (
		listJSON bool
		listTree bool
		listTag  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List pages in the workspace",
		Aliases: []string{"ls"},
		Long: `List pages in the workspace.

Examples:
  pages list           # Flat table of all pages
  pages list --tree    # Indented hierarchy
  pages list --json    # Machine-readable output
  pages list --tag work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *st

			pages, err := s.List()
			if err != nil {
				return fmt.Errorf("list pages: %w", err)
			}

			if listTag != "" {
				var filtered []*models.Page
				for _, p := range pages {
					for _, tag := range p.Tags {
						if tag == listTag {
							filtered = append(filtered, p)
							break
						}
					}
				}
				pages = filtered
			}

			if listJSON {
				return outputJSON(pages)
			}

			if listTree {
				forest := hierarchy.NewBuilder(config.SortMode()).BuildForest(pages)
				printForest(forest, 0)
				return nil
			}

			printPagesTable(pages)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output pages as JSON")
	cmd.Flags().BoolVar(&listTree, "tree", false, "Output pages as an indented hierarchy")
	cmd.Flags().StringVar(&listTag, "tag", "", "Only show pages with this tag")

	return cmd
}

func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pages: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printForest(forest []*hierarchy.Node, depth int) {
	for _, n := range forest {
		marker := "-"
		if n.Page.IsFolder {
			marker = "+"
		}
		fmt.Printf("%s%s %s  (%s)\n", strings.Repeat("  ", depth), marker, n.Page.Title, n.Page.ID)
		printForest(n.Children, depth+1)
	}
}

func printPagesTable(pages []*models.Page) {
	if len(pages) == 0 {
		fmt.Println("No pages found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPARENT\tFOLDER\tTAGS\tMODIFIED")
	for _, p := range pages {
		folder := ""
		if p.IsFolder {
			folder = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Parent, folder,
			strings.Join(p.Tags, ","),
			p.Modified.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}
