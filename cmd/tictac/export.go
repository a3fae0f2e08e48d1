package main

import (
	"os"
	"path/filepath"

	"github.com/gorgonia/tictac"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the learned values as numpy arrays",
	Long: `export trains an engine and writes every stored position as two arrays:
boards.npy of shape (N, 2, 3, 3) and values.npy of shape (N).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("out")
		augment, _ := cmd.Flags().GetBool("symmetries")

		e, logger, err := buildEngine()
		if err != nil {
			return err
		}
		var aug tictac.Augmenter
		if augment {
			aug = tictac.Symmetries
		}
		n, err := exportValues(e, aug, dir)
		if err != nil {
			return err
		}
		logger.Info().Int("examples", n).Str("dir", dir).Msg("exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Directory to write boards.npy and values.npy into")
	exportCmd.Flags().Bool("symmetries", false, "Add the rotations and reflections of every position")
}

func exportValues(e *tictac.Engine, aug tictac.Augmenter, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, errors.WithStack(err)
	}
	boards, err := os.Create(filepath.Join(dir, "boards.npy"))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer boards.Close()
	values, err := os.Create(filepath.Join(dir, "values.npy"))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer values.Close()

	return tictac.WriteNpy(e.Values(), aug, boards, values)
}
