package td

import (
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
)

// Kind is what happened after a ply.
type Kind int

const (
	Continue Kind = iota
	Win
	Draw
)

func (k Kind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Outcome is the result of one ply. Winner is only set for Win.
type Outcome struct {
	Kind   Kind
	Winner game.Player
	Next   ttt.State
	Source Source
}

// Classify inspects a freshly produced state.
func Classify(s ttt.State) Outcome {
	if w := s.Winner(); w != game.Nobody {
		return Outcome{Kind: Win, Winner: w, Next: s}
	}
	if s.IsTerminal() {
		return Outcome{Kind: Draw, Next: s}
	}
	return Outcome{Kind: Continue, Next: s}
}

// Ended returns true unless the game continues.
func (o Outcome) Ended() bool { return o.Kind != Continue }
