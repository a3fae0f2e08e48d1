package tictac

import (
	"sync"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"golang.org/x/exp/rand"
)

// An Agent is a player, AI or Human
type Agent struct {
	Mover
	Player game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name string
}

// NewAgent wraps a mover.
func NewAgent(name string, m Mover) *Agent {
	return &Agent{
		Mover: m,
		name:  name,
	}
}

func (a *Agent) Name() string { return a.name }

// Games returns the number of games tallied since the last reset.
func (a *Agent) Games() float32 { return a.Wins + a.Loss + a.Draw }

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}

// RandomMover plays uniformly at random among the legal moves.
type RandomMover struct {
	r *rand.Rand
}

func NewRandomMover(r *rand.Rand) RandomMover { return RandomMover{r: r} }

func (m RandomMover) Move(s ttt.State) (ttt.State, error) {
	if ended, _ := s.Ended(); ended {
		return s, ErrTerminal
	}
	succs := s.Successors()
	return succs[m.r.Intn(len(succs))], nil
}
