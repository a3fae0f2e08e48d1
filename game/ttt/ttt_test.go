package ttt

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(turn game.Player, cells ...game.Colour) State { return Encode(turn, cells) }

// relabel swaps every X and O, and the turn.
func relabel(s State) State {
	turn, cells := Decode(s)
	for i, c := range cells {
		switch c {
		case X:
			cells[i] = O
		case O:
			cells[i] = X
		}
	}
	return Encode(game.Opponent(turn), cells)
}

func emptyCount(s State) int {
	var n int
	for _, c := range s.Board() {
		if c == Z {
			n++
		}
	}
	return n
}

// reachable enumerates every state reachable from the initial state by legal play.
func reachable() []State {
	seen := map[State]bool{Initial(): true}
	queue := []State{Initial()}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if ended, _ := s.Ended(); ended {
			continue
		}
		for _, succ := range s.Successors() {
			if !seen[succ] {
				seen[succ] = true
				queue = append(queue, succ)
			}
		}
	}
	retVal := make([]State, 0, len(seen))
	for s := range seen {
		retVal = append(retVal, s)
	}
	return retVal
}

func TestEncodeDecode(t *testing.T) {
	cells := []game.Colour{
		X, O, Z,
		Z, X, Z,
		O, Z, Z,
	}
	s := Encode(game.Nought, cells)
	turn, got := Decode(s)
	assert.Equal(t, game.Nought, turn)
	if diff := cmp.Diff(cells, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	got[0] = O
	_, again := Decode(s)
	assert.Equal(t, X, again[0], "Decode must hand out a copy")

	assert.Equal(t, s, Encode(game.Nought, cells), "equal inputs produce equal states")
	assert.NotEqual(t, s, Encode(game.Cross, cells), "turn is part of identity")

	m := map[State]int{s: 1}
	m[Encode(game.Nought, cells)]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[s])
}

func TestEncodePanics(t *testing.T) {
	t.Run("short board", func(t *testing.T) {
		require.Panics(t, func() { Encode(game.Cross, make([]game.Colour, 8)) })
	})
	t.Run("no turn", func(t *testing.T) {
		require.Panics(t, func() { Encode(game.Nobody, make([]game.Colour, Cells)) })
	})
	t.Run("bad colour", func(t *testing.T) {
		cells := make([]game.Colour, Cells)
		cells[4] = game.Colour(7)
		require.PanicsWithValue(t, "ttt: invalid colour 7 at cell 4", func() { Encode(game.Cross, cells) })
	})
}

func TestSuccessors(t *testing.T) {
	for _, s := range reachable() {
		if ended, _ := s.Ended(); ended {
			continue
		}
		succs := s.Successors()
		require.Len(t, succs, emptyCount(s), "%v", s)

		var prev game.Single = -1
		for _, succ := range succs {
			assert.Equal(t, game.Opponent(s.ToMove()), succ.ToMove())
			cell := Diff(s, succ)
			require.NotEqual(t, game.NoCell, cell, "successor must differ in exactly one cell")
			assert.Equal(t, game.Colour(s.ToMove()), succ.Cell(cell))
			assert.Greater(t, int(cell), int(prev), "successors come in cell order")
			prev = cell
		}
	}
}

func TestSuccessorsOfInitial(t *testing.T) {
	succs := Initial().Successors()
	require.Len(t, succs, Cells)
	for i, succ := range succs {
		want := make([]game.Colour, Cells)
		want[i] = X
		turn, cells := Decode(succ)
		assert.Equal(t, game.Nought, turn)
		if diff := cmp.Diff(want, cells); diff != "" {
			t.Errorf("successor %d (-want +got):\n%s", i, diff)
		}
	}
	// the initial state is untouched
	assert.Equal(t, Cells, emptyCount(Initial()))
}

func TestTicTacToe(t *testing.T) {
	s := board(game.Nought,
		X, O, X,
		O, X, O,
		O, O, X,
	)
	assert.Equal(t, game.Cross, s.Winner())
	ended, winner := s.Ended()
	assert.True(t, ended)
	assert.Equal(t, game.Cross, winner)

	s = board(game.Cross,
		X, O, O,
		X, O, X,
		O, X, X,
	)
	assert.Equal(t, game.Nought, s.Winner())
}

func TestTicTacToeEnded(t *testing.T) {
	cases := []struct {
		s      State
		ended  bool
		winner game.Player
	}{
		{board(game.Nought,
			O, Z, X,
			Z, Z, X,
			Z, O, X), true, game.Cross},
		{board(game.Cross,
			O, O, O,
			Z, Z, X,
			X, O, X), true, game.Nought},
		{board(game.Cross,
			Z, Z, X,
			X, O, X,
			O, O, O), true, game.Nought},
		{board(game.Cross,
			O, Z, X,
			X, O, X,
			O, Z, O), true, game.Nought},
		{board(game.Cross,
			O, Z, X,
			X, Z, X,
			O, Z, O), false, game.Nobody},
	}
	for i, c := range cases {
		ended, winner := c.s.Ended()
		assert.Equal(t, c.ended, ended, "case %d\n%v", i, c.s)
		assert.Equal(t, c.winner, winner, "case %d\n%v", i, c.s)
	}
}

func TestTopRowWinsRegardlessOfRest(t *testing.T) {
	rest := []game.Colour{Z, X, O}
	for a := 0; a < 729; a++ {
		cells := []game.Colour{X, X, X, Z, Z, Z, Z, Z, Z}
		n := a
		for i := 3; i < Cells; i++ {
			cells[i] = rest[n%3]
			n /= 3
		}
		s := Encode(game.Nought, cells)
		require.Equal(t, game.Cross, s.Winner(), "%v", s)
	}
}

func TestDrawnBoard(t *testing.T) {
	s := board(game.Nought,
		X, O, X,
		X, O, O,
		O, X, X,
	)
	assert.Equal(t, game.Nobody, s.Winner())
	assert.True(t, s.IsTerminal())
	ended, winner := s.Ended()
	assert.True(t, ended)
	assert.Equal(t, game.Nobody, winner)
}

func TestWonBoardIsNotTerminal(t *testing.T) {
	s := board(game.Nought,
		X, X, X,
		O, O, Z,
		Z, Z, Z,
	)
	assert.False(t, s.IsTerminal())
	assert.Equal(t, game.Cross, s.Winner())
}

func TestCrossLinesCheckedFirst(t *testing.T) {
	// not reachable under legal play
	s := board(game.Cross,
		X, X, X,
		O, O, O,
		Z, Z, Z,
	)
	assert.Equal(t, game.Cross, s.Winner())
}

func TestWinnerSymmetry(t *testing.T) {
	swap := map[game.Player]game.Player{
		game.Cross:  game.Nought,
		game.Nought: game.Cross,
		game.Nobody: game.Nobody,
	}
	for _, s := range reachable() {
		assert.Equal(t, swap[s.Winner()], relabel(s).Winner(), "%v", s)
	}
}

func TestReachableCount(t *testing.T) {
	assert.Equal(t, 5478, len(reachable()))
}

func TestPlay(t *testing.T) {
	s, err := Initial().Play(4)
	require.NoError(t, err)
	assert.Equal(t, X, s.Cell(4))
	assert.Equal(t, game.Nought, s.ToMove())
	assert.Equal(t, 1, s.MoveNumber())

	_, err = s.Play(4)
	assert.Equal(t, ErrOccupied, errors.Cause(err))
	assert.Equal(t, "Unable to make O@4: cell is occupied", err.Error())

	_, err = s.Play(9)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))
	assert.Contains(t, err.Error(), "O@9")

	won := board(game.Nought,
		X, X, X,
		O, O, Z,
		Z, Z, Z,
	)
	_, err = won.Play(5)
	assert.Equal(t, ErrGameOver, errors.Cause(err))
}

func TestDiff(t *testing.T) {
	a := Initial()
	b, _ := a.Play(7)
	c, _ := b.Play(0)
	assert.Equal(t, game.Single(7), Diff(a, b))
	assert.Equal(t, game.Single(0), Diff(b, c))
	assert.Equal(t, game.NoCell, Diff(a, c))
	assert.Equal(t, game.NoCell, Diff(a, a))
	assert.Equal(t, game.NoCell, Diff(b, a))
}

func TestTextCodec(t *testing.T) {
	s := board(game.Nought,
		X, Z, Z,
		Z, O, Z,
		Z, Z, X,
	)
	assert.Equal(t, "O|X---O---X", s.String())
	assert.Equal(t, "X|---------", Initial().String())

	parsed, err := ParseState("O|X---O---X")
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	for _, bad := range []string{"", "X|--", "Z|---------", "X----------", "X|---a-----"} {
		_, err := ParseState(bad)
		assert.Error(t, err, bad)
	}

	text, err := s.MarshalText()
	require.NoError(t, err)
	var back State
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, s, back)

	_, err = State{}.MarshalText()
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	s := board(game.Nought,
		X, Z, Z,
		Z, O, Z,
		Z, Z, X,
	)
	want := "⎢ X · · ⎥\n⎢ · O · ⎥\n⎢ · · X ⎥\n"
	assert.Equal(t, want, fmt.Sprintf("%v", s))
	assert.Equal(t, `"O|X---O---X"`, fmt.Sprintf("%q", s))
}
