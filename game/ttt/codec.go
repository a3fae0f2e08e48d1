package ttt

import (
	"strings"

	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
)

const sep = '|'

// String renders the state as "<turn>|<cells>", for example "O|X--------" after Cross
// takes the top left corner. Empty cells are '-'.
func (s State) String() string {
	var b strings.Builder
	b.Grow(2 + Cells)
	b.WriteString(s.turn.String())
	b.WriteByte(sep)
	for _, c := range s.cells {
		b.WriteByte(cellRune(c))
	}
	return b.String()
}

// ParseState parses the representation produced by String.
func ParseState(a string) (State, error) {
	a = strings.TrimSpace(a)
	if len(a) != 2+Cells || a[1] != sep {
		return State{}, errors.Errorf("Unable to parse state %q: expected the form X|---------", a)
	}
	var s State
	switch a[0] {
	case 'X', 'x':
		s.turn = game.Cross
	case 'O', 'o':
		s.turn = game.Nought
	default:
		return State{}, errors.Errorf("Unable to parse state %q: invalid turn %q", a, a[0])
	}
	for i := 0; i < Cells; i++ {
		switch a[2+i] {
		case '-', '.':
			s.cells[i] = Z
		case 'X', 'x':
			s.cells[i] = X
		case 'O', 'o':
			s.cells[i] = O
		default:
			return State{}, errors.Errorf("Unable to parse state %q: invalid cell %q at %d", a, a[2+i], i)
		}
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.turn.IsMark() {
		return nil, errors.New("Cannot marshal a zero State")
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func cellRune(c game.Colour) byte {
	switch c {
	case X:
		return 'X'
	case O:
		return 'O'
	}
	return '-'
}
