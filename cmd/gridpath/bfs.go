package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/grid"
)

func newBFSCmd(cfg *config) *cobra.Command {
	var startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "bfs --start row,col --end row,col [file]",
		Short: "Label shortest distances by breadth-first search",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePosition(startFlag)
			if err != nil {
				return err
			}
			end, err := parsePosition(endFlag)
			if err != nil {
				return err
			}
			g, err := cfg.loadGrid(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return runBFS(cmd, cfg, g, start, end)
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start cell as row,col")
	cmd.Flags().StringVar(&endFlag, "end", "", "end cell as row,col")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runBFS(cmd *cobra.Command, cfg *config, g *grid.Grid, start, end grid.Position) error {
	out := cmd.OutOrStdout()
	res, err := distance.ShortestDistance(g, start, end,
		distance.WithOnLabel(func(p grid.Position, d int) {
			cfg.log.WithFields(logrus.Fields{"row": p.Row, "col": p.Col, "distance": d}).Trace("label")
		}),
	)
	cfg.log.WithFields(logrus.Fields{
		"labeled":     res.Labeled,
		"relaxations": res.Relaxations,
	}).Debug("bfs finished")

	switch {
	case errors.Is(err, distance.ErrUnreachable):
		fmt.Fprintln(out, "no path from start to end.")
		return errNoPath
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "shortest distance: %d\n", res.Distance)
	if err := grid.Render(out, g, cfg.renderOptions(grid.WithDistances())...); err != nil {
		return err
	}
	path, err := distance.Trace(g, start, end)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "path:", path)

	return nil
}
