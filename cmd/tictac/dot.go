package main

import (
	"fmt"
	"os"

	"github.com/gorgonia/tictac/game/ttt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print the engine's greedy line as a Graphviz graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		depth, _ := cmd.Flags().GetInt("depth")

		start, err := ttt.ParseState(from)
		if err != nil {
			return errors.Wrap(err, "invalid --from")
		}
		e, _, err := buildEngine()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, e.ToDot(start, depth))
		return nil
	},
}

func init() {
	dotCmd.Flags().String("from", ttt.Initial().String(), "Position to start from, e.g. O|X---X----")
	dotCmd.Flags().Int("depth", 3, "Number of plies to follow")
}
