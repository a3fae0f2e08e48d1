// Command tictac trains a tic-tac-toe engine by self-play and then plays it, serves it,
// or inspects what it learned.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gorgonia/tictac"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tictac",
	Short: "Self-taught tic-tac-toe",
	Long: `tictac learns to play tic-tac-toe by playing against itself, updating a table of
position values by temporal-difference learning. Once trained, the engine can be
played from the console, over a text protocol or over HTTP.`,
	SilenceUsage: true,
}

func init() {
	conf := tictac.DefaultConfig()

	// Learning settings
	rootCmd.PersistentFlags().Int("episodes", conf.Episodes, "Self-play episodes to train before playing")
	rootCmd.PersistentFlags().Float64("alpha", conf.TD.Alpha, "Learning rate, in (0, 1]")
	rootCmd.PersistentFlags().Float64("explore", conf.TD.ExploreRatio, "Probability of a random move during training, in [0, 1]")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	rootCmd.PersistentFlags().Bool("learn-from-play", false, "Keep learning from games played after training")

	// Logging
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	// Bind flags to viper for environment variable support
	viper.BindPFlags(rootCmd.PersistentFlags())
	viper.SetEnvPrefix("TICTAC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(playCmd, gtpCmd, serveCmd, arenaCmd, dotCmd, exportCmd)
}

// newLogger writes human readable logs to stderr so that stdout stays free for protocols.
func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid log level")
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger(), nil
}

// configFromFlags reads the learning settings from flags and TICTAC_* environment variables.
func configFromFlags(logger *zerolog.Logger) (tictac.Config, error) {
	conf := tictac.DefaultConfig()
	conf.Episodes = viper.GetInt("episodes")
	conf.TD.Alpha = viper.GetFloat64("alpha")
	conf.TD.ExploreRatio = viper.GetFloat64("explore")
	conf.TD.LearnFromPlay = viper.GetBool("learn-from-play")
	conf.Seed = viper.GetUint64("seed")
	conf.Logger = logger
	if !conf.IsValid() {
		return conf, errors.Errorf("invalid configuration: episodes %d, alpha %v, explore %v",
			conf.Episodes, conf.TD.Alpha, conf.TD.ExploreRatio)
	}
	return conf, nil
}

// buildEngine trains an engine according to the flags.
func buildEngine() (*tictac.Engine, zerolog.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, logger, err
	}
	conf, err := configFromFlags(&logger)
	if err != nil {
		return nil, logger, err
	}
	logger.Info().
		Int("episodes", conf.Episodes).
		Float64("alpha", conf.TD.Alpha).
		Float64("explore", conf.TD.ExploreRatio).
		Msg("training")
	return tictac.New(conf), logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
