package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/calc"
)

func newCalcCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an infix integer expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := calc.Evaluate(expr)
			if err != nil {
				return err
			}
			cfg.log.WithField("expression", expr).Debug("evaluated")
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}
