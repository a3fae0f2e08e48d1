package td

import (
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"golang.org/x/exp/rand"
)

// Source tags which branch of Choose produced a move.
type Source int

const (
	Exploit Source = iota
	Explore
)

func (s Source) String() string {
	switch s {
	case Exploit:
		return "exploit"
	case Explore:
		return "explore"
	}
	return "unknown"
}

// Maximises reports whether p picks the highest valued successor. Nought maximises and
// Cross minimises, so a single table serves both sides of the zero-sum game.
func Maximises(p game.Player) bool { return p == game.Nought }

// Policy picks successors, greedily or at random, reading and seeding the value store.
type Policy struct {
	values *Values
	rand   *rand.Rand
}

// NewPolicy creates a policy. The random source is used for exploration and for breaking
// ties between equally valued successors.
func NewPolicy(values *Values, r *rand.Rand) *Policy {
	if r == nil {
		panic("Policy requires a random source")
	}
	return &Policy{values: values, rand: r}
}

// SelectExtreme returns the best successor for turn: a uniformly random pick among the
// highest valued candidates if turn maximises, among the lowest valued otherwise.
// Every candidate is inserted into the store before comparison.
func (p *Policy) SelectExtreme(turn game.Player, candidates []ttt.State) (ttt.State, float64) {
	if len(candidates) == 0 {
		panic("SelectExtreme: no candidates")
	}
	high := make([]ttt.State, 0, len(candidates))
	low := make([]ttt.State, 0, len(candidates))
	highValue := p.values.Get(candidates[0])
	lowValue := highValue
	high = append(high, candidates[0])
	low = append(low, candidates[0])
	for _, c := range candidates[1:] {
		v := p.values.Get(c)
		switch {
		case v > highValue:
			highValue = v
			high = append(high[:0], c)
		case v == highValue:
			high = append(high, c)
		}
		switch {
		case v < lowValue:
			lowValue = v
			low = append(low[:0], c)
		case v == lowValue:
			low = append(low, c)
		}
	}
	if Maximises(turn) {
		return high[p.rand.Intn(len(high))], highValue
	}
	return low[p.rand.Intn(len(low))], lowValue
}

// SelectRandom returns a uniformly random candidate, inserting it into the store.
func (p *Policy) SelectRandom(candidates []ttt.State) ttt.State {
	if len(candidates) == 0 {
		panic("SelectRandom: no candidates")
	}
	s := candidates[p.rand.Intn(len(candidates))]
	p.values.Get(s)
	return s
}

// Choose draws once: above exploreRatio it exploits, otherwise it explores.
func (p *Policy) Choose(turn game.Player, candidates []ttt.State, exploreRatio float64) (ttt.State, Source) {
	if p.rand.Float64() > exploreRatio {
		s, _ := p.SelectExtreme(turn, candidates)
		return s, Exploit
	}
	return p.SelectRandom(candidates), Explore
}
