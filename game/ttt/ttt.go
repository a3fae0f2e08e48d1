// Package ttt implements tic-tac-toe positions as immutable, comparable values.
package ttt

import (
	"fmt"

	"github.com/gorgonia/tictac/game"
)

const (
	// Size is the width and height of the board.
	Size = 3
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

var (
	X = game.Colour(game.Cross)
	O = game.Colour(game.Nought)
	Z = game.None
)

// lines holds the eight winning lines in the order they are checked: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is a tic-tac-toe position: whose turn it is and the contents of the nine cells.
//
// A State is a value. It is never mutated after construction, so two States are equal
// under == exactly when both the turn and every cell match, and a State may be used as a map key.
type State struct {
	turn  game.Player
	cells [Cells]game.Colour
}

// Initial returns the empty board with Cross to move.
func Initial() State { return State{turn: game.Cross} }

// Encode builds a State from a turn marker and nine cells.
// Malformed input is a programming error and panics.
func Encode(turn game.Player, cells []game.Colour) State {
	if !turn.IsMark() {
		panic(fmt.Sprintf("ttt: invalid turn %v", turn))
	}
	if len(cells) != Cells {
		panic(fmt.Sprintf("ttt: expected %d cells, got %d", Cells, len(cells)))
	}
	s := State{turn: turn}
	for i, c := range cells {
		if !c.IsValid() {
			panic(fmt.Sprintf("ttt: invalid colour %d at cell %d", int32(c), i))
		}
		s.cells[i] = c
	}
	return s
}

// Decode is the inverse of Encode. The returned slice is a fresh copy.
func Decode(s State) (turn game.Player, cells []game.Colour) {
	cells = make([]game.Colour, Cells)
	copy(cells, s.cells[:])
	return s.turn, cells
}

// ToMove returns the player whose turn it is.
func (s State) ToMove() game.Player { return s.turn }

// Cell returns the colour at cell i.
func (s State) Cell(i game.Single) game.Colour { return s.cells[i] }

// Board returns a copy of the cells.
func (s State) Board() [Cells]game.Colour { return s.cells }

// MoveNumber returns the number of marks on the board.
func (s State) MoveNumber() int {
	var n int
	for _, c := range s.cells {
		if c != Z {
			n++
		}
	}
	return n
}

// Successors returns one State per empty cell, in cell order, with the mover's mark placed
// in that cell and the turn passed to the opponent.
func (s State) Successors() []State {
	retVal := make([]State, 0, Cells)
	next := game.Opponent(s.turn)
	for i, c := range s.cells {
		if c != Z {
			continue
		}
		succ := s
		succ.cells[i] = game.Colour(s.turn)
		succ.turn = next
		retVal = append(retVal, succ)
	}
	return retVal
}

// Winner returns the player holding a complete line. Cross's lines are checked before
// Nought's. It returns game.Nobody if no line is complete.
func (s State) Winner() game.Player {
	if s.isWinner(game.Cross) {
		return game.Cross
	}
	if s.isWinner(game.Nought) {
		return game.Nought
	}
	return game.Nobody
}

// IsTerminal returns true iff no empty cell remains. A won board with empty cells is not
// terminal; check Winner first.
func (s State) IsTerminal() bool {
	for _, c := range s.cells {
		if c == Z {
			return false
		}
	}
	return true
}

// Ended checks if the game has ended. If it has, who is the winner?
func (s State) Ended() (ended bool, winner game.Player) {
	if winner = s.Winner(); winner != game.Nobody {
		return true, winner
	}
	return s.IsTerminal(), game.Nobody
}

// Play places the mover's mark in cell and passes the turn.
func (s State) Play(cell game.Single) (State, error) {
	m := game.PlayerMove{Player: s.turn, Single: cell}
	if ended, _ := s.Ended(); ended {
		return s, moveError{m, ErrGameOver}
	}
	if !cell.IsValid(Cells) {
		return s, moveError{m, ErrOutOfRange}
	}
	if s.cells[cell] != Z {
		return s, moveError{m, ErrOccupied}
	}
	s.cells[cell] = game.Colour(s.turn)
	s.turn = game.Opponent(s.turn)
	return s, nil
}

// Diff returns the single cell that is empty in before and filled in after.
// It returns game.NoCell if the two states do not differ by exactly one placement.
func Diff(before, after State) game.Single {
	cell := game.NoCell
	for i := range before.cells {
		if before.cells[i] == after.cells[i] {
			continue
		}
		if before.cells[i] != Z || cell != game.NoCell {
			return game.NoCell
		}
		cell = game.Single(i)
	}
	return cell
}

func (s State) isWinner(p game.Player) bool {
	colour := game.Colour(p)
	for _, l := range lines {
		if s.cells[l[0]] == colour && s.cells[l[1]] == colour && s.cells[l[2]] == colour {
			return true
		}
	}
	return false
}

func (s State) Format(f fmt.State, c rune) {
	switch c {
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	default:
		for i, c := range s.cells {
			if i%Size == 0 {
				fmt.Fprint(f, "⎢ ")
			}
			fmt.Fprintf(f, "%s ", c)
			if (i+1)%Size == 0 {
				fmt.Fprint(f, "⎥\n")
			}
		}
	}
}
