package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <file> <query>",
		Short: "Print the rows a query leaves visible",
		Long: `Filter a tree by query and print the visible rows, indented by depth.
Exits with status 1 when nothing matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, cfg, err := newManager(args[0])
			if err != nil {
				return err
			}
			res := mgr.Filter(args[1], cfg.KeepTreeOnSearch, cfg.KeepChildrenOnSearch)
			if res.AllNodesHidden {
				fmt.Fprintln(cmd.ErrOrStderr(), "No matches found")
				return &exitError{code: 1}
			}
			out := cmd.OutOrStdout()
			for _, id := range mgr.VisibleOrder() {
				n, ok := res.Index.Get(id)
				if !ok {
					continue
				}
				fmt.Fprintf(out, "%s%s\t%s\n", strings.Repeat("  ", n.Depth), n.Label, n.ID)
			}
			return nil
		},
	}
}
