package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
)

// errNoPath signals that a search ran to completion without success.
// The command has already printed the outcome.
var errNoPath = errors.New("gridpath: no path")

// config carries the persistent flags and the logger shared by sub-commands.
type config struct {
	verbose  bool
	trace    bool
	interior bool
	log      *logrus.Logger
}

// newRootCmd builds the command tree. The returned config holds the logger
// the flags configure, which main also reports failures through.
func newRootCmd() (*cobra.Command, *config) {
	cfg := &config{log: logrus.New()}
	cfg.configureLogger(os.Stderr)

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Search mazes on a bordered grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg.configureLogger(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log search summaries")
	root.PersistentFlags().BoolVar(&cfg.trace, "trace", false, "log every search step")
	root.PersistentFlags().BoolVar(&cfg.interior, "interior", false, "print the grid without its border")

	root.AddCommand(newDFSCmd(cfg), newBFSCmd(cfg), newCalcCmd(cfg))

	return root, cfg
}

// exitCode maps a command error to the process exit status: 2 when a
// search found nothing, 1 otherwise. Other errors are logged first.
func (c *config) exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoPath):
		return 2
	default:
		c.log.Error(err)
		return 1
	}
}

// configureLogger points the logger at w and picks the level from the flags.
func (c *config) configureLogger(w io.Writer) {
	c.log.SetOutput(w)
	c.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case c.trace:
		c.log.SetLevel(logrus.TraceLevel)
	case c.verbose:
		c.log.SetLevel(logrus.DebugLevel)
	default:
		c.log.SetLevel(logrus.WarnLevel)
	}
}

// renderOptions translates the persistent flags into grid.Render options.
func (c *config) renderOptions(extra ...grid.RenderOption) []grid.RenderOption {
	opts := append([]grid.RenderOption{}, extra...)
	if c.interior {
		opts = append(opts, grid.WithInterior())
	}

	return opts
}

// loadGrid parses the maze from the named file, or from in when args is empty.
func (c *config) loadGrid(in io.Reader, args []string) (*grid.Grid, error) {
	src := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in, src = f, args[0]
	}
	g, err := grid.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("reading maze from %s: %w", src, err)
	}
	if c.log.IsLevelEnabled(logrus.DebugLevel) {
		c.log.WithFields(logrus.Fields{
			"source":  src,
			"rows":    g.Rows(),
			"cols":    g.Cols(),
			"regions": len(g.Regions()),
		}).Debug("maze loaded")
	}

	return g, nil
}

// stepLogger returns a hook that logs one search step at Trace level.
func (c *config) stepLogger(event string) func(p grid.Position) {
	return func(p grid.Position) {
		c.log.WithFields(logrus.Fields{"row": p.Row, "col": p.Col}).Trace(event)
	}
}

// parsePosition reads "row,col".
func parsePosition(s string) (grid.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: bad column: %w", s, err)
	}

	return grid.Pos(r, col), nil
}
