package tictac

import (
	"time"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/gorgonia/tictac/td"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// ErrTerminal is returned when asked to move in a finished game.
var ErrTerminal = errors.New("game is over")

// Engine is the top level structure and the entry point of the API.
// It owns one value store for its lifetime: the store is trained when the engine is built
// and read by every reply. Front ends hold an Engine and only talk to it through its methods.
type Engine struct {
	Config
	Summary td.Summary // result of all training so far

	values  *td.Values
	policy  *td.Policy
	trainer *td.Trainer
	rand    *rand.Rand
	logger  zerolog.Logger
}

// New builds an engine and trains it for conf.Episodes self-play games before returning.
func New(conf Config) *Engine {
	if !conf.IsValid() {
		panic("Config is not valid. Unable to proceed")
	}
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := zerolog.Nop()
	if conf.Logger != nil {
		logger = conf.Logger.With().Str("engine", conf.Name).Logger()
	}

	r := rand.New(rand.NewSource(seed))
	values := td.NewValues(conf.TD.Alpha)
	policy := td.NewPolicy(values, r)
	retVal := &Engine{
		Config:  conf,
		values:  values,
		policy:  policy,
		trainer: td.NewTrainer(conf.TD, values, policy, logger),
		rand:    r,
		logger:  logger,
	}
	retVal.Train(conf.Episodes)
	return retVal
}

// NewEngine builds and trains an engine from the three learning parameters.
func NewEngine(episodes int, alpha, exploreRatio float64) *Engine {
	conf := DefaultConfig()
	conf.Episodes = episodes
	conf.TD.Alpha = alpha
	conf.TD.ExploreRatio = exploreRatio
	return New(conf)
}

// Train runs more self-play episodes on the same store.
func (e *Engine) Train(episodes int) td.Summary {
	if episodes <= 0 {
		e.Summary.States = e.values.Len()
		return td.Summary{States: e.values.Len()}
	}
	sum := e.trainer.RunTraining(ttt.Initial(), episodes)
	e.Summary.Episodes += sum.Episodes
	e.Summary.CrossWins += sum.CrossWins
	e.Summary.NoughtWins += sum.NoughtWins
	e.Summary.Draws += sum.Draws
	e.Summary.Plies += sum.Plies
	e.Summary.Explored += sum.Explored
	e.Summary.Elapsed += sum.Elapsed
	e.Summary.States = sum.States
	return sum
}

// Reply picks the engine's move from s. It always exploits: ties among the best valued
// successors are broken at random, and nothing is explored.
// The store is only updated when the engine is configured to learn from play.
func (e *Engine) Reply(s ttt.State) (ttt.State, error) {
	if ended, winner := s.Ended(); ended {
		return s, errors.Wrapf(ErrTerminal, "cannot reply to %q (winner: %s)", s, winner.String())
	}
	next, val := e.policy.SelectExtreme(s.ToMove(), s.Successors())
	if e.TD.LearnFromPlay {
		e.values.Update(s, val)
		if w := next.Winner(); w != game.Nobody {
			e.values.Update(next, td.Reward(w))
		}
	}
	e.logger.Debug().Stringer("state", s).Stringer("reply", next).Float64("value", val).Msg("reply")
	return next, nil
}

// Move implements Mover.
func (e *Engine) Move(s ttt.State) (ttt.State, error) { return e.Reply(s) }

// Conclude reports a finished game. If the engine learns from play and the game was won,
// the final position is pulled toward the reward.
func (e *Engine) Conclude(s ttt.State) {
	if !e.TD.LearnFromPlay {
		return
	}
	if w := s.Winner(); w != game.Nobody {
		e.values.Update(s, td.Reward(w))
	}
}

// Initial returns the empty board every game starts from.
func (e *Engine) Initial() ttt.State { return ttt.Initial() }

// Winner returns the player holding a complete line, or game.Nobody.
func (e *Engine) Winner(s ttt.State) game.Player { return s.Winner() }

// IsTerminal returns true when the board is full.
func (e *Engine) IsTerminal(s ttt.State) bool { return s.IsTerminal() }

// Encode builds a state from a turn and nine cells.
func (e *Engine) Encode(turn game.Player, cells []game.Colour) ttt.State {
	return ttt.Encode(turn, cells)
}

// Decode returns the turn and cells of s.
func (e *Engine) Decode(s ttt.State) (game.Player, []game.Colour) { return ttt.Decode(s) }

// Values returns the value store.
func (e *Engine) Values() *td.Values { return e.values }

// Rand returns the engine's random source.
func (e *Engine) Rand() *rand.Rand { return e.rand }

// ToDot draws the engine's preferred line from s for depth plies.
func (e *Engine) ToDot(s ttt.State, depth int) string { return td.ToDot(e.values, s, depth) }
