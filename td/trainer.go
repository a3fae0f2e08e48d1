package td

import (
	"time"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/rs/zerolog"
)

const WIN = 1.0   // Reward when Nought wins
const LOSS = -WIN // Reward when Cross wins

// Reward returns the terminal reward for a winner.
func Reward(winner game.Player) float64 {
	switch winner {
	case game.Nought:
		return WIN
	case game.Cross:
		return LOSS
	}
	panic("no reward without a winner")
}

// Episode describes one finished self-play game.
type Episode struct {
	Final    ttt.State
	Winner   game.Player
	Plies    int
	Explored int // plies chosen at random
}

// Summary tallies a training run.
type Summary struct {
	Episodes   int
	CrossWins  int
	NoughtWins int
	Draws      int
	Plies      int
	Explored   int
	States     int // size of the value store when the run finished
	Elapsed    time.Duration
}

func (s *Summary) add(e Episode) {
	s.Episodes++
	s.Plies += e.Plies
	s.Explored += e.Explored
	switch e.Winner {
	case game.Cross:
		s.CrossWins++
	case game.Nought:
		s.NoughtWins++
	default:
		s.Draws++
	}
}

// Trainer plays self-play episodes and applies the temporal-difference update after every ply.
type Trainer struct {
	Config
	values *Values
	policy *Policy
	logger zerolog.Logger
}

func NewTrainer(conf Config, values *Values, policy *Policy, logger zerolog.Logger) *Trainer {
	if !conf.IsValid() {
		panic("td.Config is not valid. Unable to proceed")
	}
	return &Trainer{
		Config: conf,
		values: values,
		policy: policy,
		logger: logger,
	}
}

// Step plays one ply from current. The value of current moves toward the value of the
// chosen successor; a winning successor is itself pulled toward the terminal reward.
func (t *Trainer) Step(current ttt.State) Outcome {
	next, src := t.policy.Choose(current.ToMove(), current.Successors(), t.ExploreRatio)
	t.values.Update(current, t.values.Get(next))

	out := Classify(next)
	out.Source = src
	if out.Kind == Win {
		t.values.Update(next, Reward(out.Winner))
	}
	return out
}

// RunEpisode plays a game from start until it is won or the board is full.
func (t *Trainer) RunEpisode(start ttt.State) Episode {
	if ended, winner := start.Ended(); ended {
		return Episode{Final: start, Winner: winner}
	}

	var e Episode
	s := start
	for ply := 0; ply < ttt.Cells; ply++ {
		out := t.Step(s)
		e.Plies++
		if out.Source == Explore {
			e.Explored++
		}
		if out.Ended() {
			e.Final = out.Next
			e.Winner = out.Winner
			return e
		}
		s = out.Next
	}
	panic("Unreachable: an episode cannot outlast the board")
}

// RunTraining runs episodes games from start. The value store accumulates across episodes.
func (t *Trainer) RunTraining(start ttt.State, episodes int) Summary {
	var sum Summary
	begin := time.Now()
	for i := 0; i < episodes; i++ {
		sum.add(t.RunEpisode(start))
		if t.ReportInterval > 0 && (i+1)%t.ReportInterval == 0 {
			t.logger.Debug().
				Int("episode", i+1).
				Int("states", t.values.Len()).
				Int("x_wins", sum.CrossWins).
				Int("o_wins", sum.NoughtWins).
				Int("draws", sum.Draws).
				Msg("training progress")
		}
	}
	sum.States = t.values.Len()
	sum.Elapsed = time.Since(begin)
	t.logger.Info().
		Int("episodes", sum.Episodes).
		Int("states", sum.States).
		Int("x_wins", sum.CrossWins).
		Int("o_wins", sum.NoughtWins).
		Int("draws", sum.Draws).
		Dur("elapsed", sum.Elapsed).
		Msg("training complete")
	return sum
}
