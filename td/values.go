package td

import (
	"sort"

	"github.com/gorgonia/tictac/game/ttt"
)

// Values is the value store: the estimated outcome of each visited state from the point
// of view of the maximising player (Nought). Unseen states are neutral.
//
// Values is not safe for concurrent use. Get inserts on a miss, so even readers must be
// serialised.
type Values struct {
	alpha float64
	m     map[ttt.State]float64
}

// NewValues creates an empty store that learns at rate alpha.
func NewValues(alpha float64) *Values {
	if alpha <= 0 || alpha > 1 {
		panic("alpha must be in (0, 1]")
	}
	return &Values{
		alpha: alpha,
		m:     make(map[ttt.State]float64, 8192),
	}
}

// Alpha returns the learning rate.
func (v *Values) Alpha() float64 { return v.alpha }

// Get returns the stored value of s, inserting a neutral 0 the first time s is seen.
func (v *Values) Get(s ttt.State) float64 {
	val, ok := v.m[s]
	if !ok {
		v.m[s] = 0
	}
	return val
}

// Peek returns the stored value of s without inserting it.
func (v *Values) Peek(s ttt.State) (val float64, ok bool) {
	val, ok = v.m[s]
	return
}

// Update moves the value of s toward target: v += alpha * (target - v).
func (v *Values) Update(s ttt.State, target float64) {
	old := v.Get(s)
	v.m[s] = old + v.alpha*(target-old)
}

// Len returns the number of distinct states seen so far.
func (v *Values) Len() int { return len(v.m) }

// Range calls fn for every stored state, ordered by the state's text form so that
// iteration is reproducible. Range stops early if fn returns false.
func (v *Values) Range(fn func(s ttt.State, val float64) bool) {
	keys := make([]ttt.State, 0, len(v.m))
	for s := range v.m {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, s := range keys {
		if !fn(s, v.m[s]) {
			return
		}
	}
}
