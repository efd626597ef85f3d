package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/backtrack"
	"github.com/katalvlaran/gridpath/grid"
)

func newDFSCmd(cfg *config) *cobra.Command {
	var entryFlag, exitFlag string

	cmd := &cobra.Command{
		Use:   "dfs [file]",
		Short: "Find a path by depth-first search with backtracking",
		Long: "Find some path from entry to exit. Entry defaults to the top-left " +
			"interior cell and exit to the bottom-right one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cfg.loadGrid(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			entry, exit := grid.Pos(1, 1), grid.Pos(g.Rows(), g.Cols())
			if entryFlag != "" {
				if entry, err = parsePosition(entryFlag); err != nil {
					return err
				}
			}
			if exitFlag != "" {
				if exit, err = parsePosition(exitFlag); err != nil {
					return err
				}
			}

			return runDFS(cmd, cfg, g, entry, exit)
		},
	}
	cmd.Flags().StringVar(&entryFlag, "entry", "", "entry cell as row,col (default 1,1)")
	cmd.Flags().StringVar(&exitFlag, "exit", "", "exit cell as row,col (default rows,cols)")

	return cmd
}

func runDFS(cmd *cobra.Command, cfg *config, g *grid.Grid, entry, exit grid.Position) error {
	out := cmd.OutOrStdout()
	path, err := backtrack.FindPath(g, entry, exit,
		backtrack.WithOnAdvance(cfg.stepLogger("advance")),
		backtrack.WithOnBacktrack(cfg.stepLogger("dead end")),
	)
	cfg.log.WithFields(logrus.Fields{
		"advances":   path.Stats.Advances,
		"backtracks": path.Stats.Backtracks,
	}).Debug("dfs finished")

	switch {
	case errors.Is(err, backtrack.ErrNotFound):
		fmt.Fprintln(out, "no path found.")
		return errNoPath
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "path found: %d moves\n", path.Len())
	if err := grid.Render(out, g, cfg.renderOptions()...); err != nil {
		return err
	}
	fmt.Fprintln(out, "moves:", path.Moves)

	return nil
}
