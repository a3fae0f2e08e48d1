package server

import (
	"fmt"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
)

// Game is the JSON view of a game in progress. Cells are indexed 0 to 8, row-major.
type Game struct {
	ID     string   `json:"id"`
	Board  string   `json:"board"` // text form, e.g. "O|X--------"
	Cells  []string `json:"cells"` // "X", "O" or ""
	ToMove string   `json:"to_move"`
	Human  string   `json:"human"`
	Status string   `json:"status"` // "ongoing", "draw" or "won"
	Winner string   `json:"winner,omitempty"`

	// EngineCell is the cell the engine played last, if it has replied to the last move.
	EngineCell *int `json:"engine_cell,omitempty"`
}

func viewOf(sess *session) Game {
	g := Game{
		ID:     sess.id.String(),
		Board:  sess.state.String(),
		Cells:  make([]string, ttt.Cells),
		ToMove: sess.state.ToMove().String(),
		Human:  sess.human.String(),
		Status: "ongoing",
	}
	for i, c := range sess.state.Board() {
		if c != ttt.Z {
			g.Cells[i] = fmt.Sprintf("%s", c)
		}
	}
	if ended, winner := sess.state.Ended(); ended {
		g.Status = "draw"
		if winner != game.Nobody {
			g.Status = "won"
			g.Winner = winner.String()
		}
	}
	if sess.last != game.NoCell {
		cell := int(sess.last)
		g.EngineCell = &cell
	}
	return g
}
