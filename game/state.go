package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	case 'd':
		fmt.Fprintf(s, "%d", int32(cl))
	}
}

// IsValid returns true for the three colours a cell may hold.
func (cl Colour) IsValid() bool { return cl >= None && cl <= White }

// Player represents a player. It's also a colour.
type Player Colour

const (
	// Cross moves first and minimises the learned value.
	Cross = Player(Black)
	// Nought moves second and maximises the learned value.
	Nought = Player(White)
	// Nobody is returned when there is no winner.
	Nobody = Player(None)
)

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch Colour(p) {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch Colour(p) {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// String returns the mark a player puts on the board, or "none".
func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Nought:
		return "O"
	}
	return "none"
}

// IsMark returns true if p is one of the two players that can move.
func (p Player) IsMark() bool { return p == Cross || p == Nought }

// Opponent returns the other player. It panics for Nobody.
func Opponent(p Player) Player {
	switch p {
	case Cross:
		return Nought
	case Nought:
		return Cross
	}
	panic("Unreachable")
}

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%s@%d", p.Player, p.Single) }

// Single represents a cell as a single number, utilized in a rowmajor fashion.
//		- 0 represents the top left
//		- 2 represents the top right
//		- 3 represents (1, 0)
// 		- -1 represents "no cell"
type Single int32

// NoCell is returned when a cell cannot be determined.
const NoCell Single = -1

// IsValid returns true if the cell lies on a board with the given number of cells.
func (c Single) IsValid(cells int) bool { return c >= 0 && int(c) < cells }

// Board is any position that can be rendered and asked whether it is over.
type Board interface {
	fmt.Formatter
	Ended() (ended bool, winner Player)
}

// MetaState describes a position inside a longer run: which game it belongs to, and when.
type MetaState interface {
	Name() string // name of the game
	Epoch() int
	GameNumber() int
	State() Board
}
