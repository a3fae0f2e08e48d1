package tictac

import (
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/gorgonia/tictac/td"
	"github.com/rs/zerolog"
)

// Config configures an Engine.
type Config struct {
	Name     string
	Episodes int // self-play episodes run by New. 0 leaves every value neutral
	TD       td.Config
	Seed     uint64 // seeds the random source. 0 seeds from the clock

	Logger *zerolog.Logger // nil discards logs
}

// DefaultConfig returns a config that trains 15000 episodes with the default learning parameters.
func DefaultConfig() Config {
	return Config{
		Name:     "Tic Tac Toe",
		Episodes: 15000,
		TD:       td.DefaultConfig(),
	}
}

// IsValid returns true if the episode count is not negative and the learning parameters are valid.
func (c Config) IsValid() bool {
	return c.Episodes >= 0 && c.TD.IsValid()
}

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Mover is anything that can answer a position with the next one.
type Mover interface {
	Move(s ttt.State) (ttt.State, error)
}

// Augmenter takes an example, and creates more examples from it.
type Augmenter func(a Example) []Example

// Example is a representation of an example.
type Example struct {
	Board []float32
	Value float32
}
