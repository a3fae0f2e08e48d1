package main

import (
	"os"

	"github.com/gorgonia/tictac"
	"github.com/gorgonia/tictac/encoding/gif"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var arenaCmd = &cobra.Command{
	Use:   "arena",
	Short: "Train in rounds and measure the engine against a random player",
	Long: `arena alternates training and evaluation. Each round trains the engine for
--episodes more games, then plays --games games against a uniformly random
player, swapping marks after every game.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, _ := cmd.Flags().GetInt("rounds")
		games, _ := cmd.Flags().GetInt("games")
		csvFile, _ := cmd.Flags().GetString("csv")
		gifFile, _ := cmd.Flags().GetString("gif")

		logger, err := newLogger()
		if err != nil {
			return err
		}
		conf, err := configFromFlags(&logger)
		if err != nil {
			return err
		}
		perRound := conf.Episodes
		conf.Episodes = 0
		e := tictac.New(conf)

		ar := tictac.NewArena(
			tictac.NewAgent("engine", e),
			tictac.NewAgent("random", tictac.NewRandomMover(e.Rand())),
			"engine vs random",
		)
		ar.Alternate = true

		var enc *gif.Encoder
		if gifFile != "" {
			f, err := os.Create(gifFile)
			if err != nil {
				return errors.Wrap(err, "unable to create gif")
			}
			defer f.Close()
			enc = gif.NewEncoder(f, 600, 600)
		}

		for r := 0; r < rounds; r++ {
			sum := e.Train(perRound)
			// only the last round is animated
			var out tictac.OutputEncoder
			if enc != nil && r == rounds-1 {
				out = enc
			}
			if err := ar.Round(r, games, out); err != nil {
				return err
			}
			logger.Info().
				Int("round", r).
				Int("states", sum.States).
				Float32("engine_wins", ar.A.Wins).
				Float32("engine_losses", ar.A.Loss).
				Float32("draws", ar.A.Draw).
				Msg("round complete")
		}

		if enc != nil && rounds > 0 {
			if err := enc.Flush(); err != nil {
				return errors.Wrap(err, "unable to write gif")
			}
		}
		if csvFile != "" {
			if err := ar.Dump(csvFile); err != nil {
				return errors.Wrap(err, "unable to write statistics")
			}
		}
		return nil
	},
}

func init() {
	arenaCmd.Flags().Int("rounds", 10, "Number of train and evaluate rounds")
	arenaCmd.Flags().Int("games", 100, "Evaluation games per round")
	arenaCmd.Flags().String("csv", "", "Write per-round win rates to this CSV file")
	arenaCmd.Flags().String("gif", "", "Animate the last round's games into this GIF file")
}
