package tictac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Arena plays games between two agents and keeps score.
type Arena struct {
	game ttt.State
	A, B *Agent

	// state
	currentPlayer *Agent
	buf           bytes.Buffer
	logger        zerolog.Logger

	// Alternate swaps the agents' marks after every game.
	Alternate bool

	name       string
	epoch      int // evaluation round
	gameNumber int // which game is this in

	Statistics
}

// NewArena makes an arena. a plays Cross and b plays Nought until the marks are swapped.
func NewArena(a, b *Agent, name string) *Arena {
	if name == "" {
		name = "UNKNOWN GAME"
	}
	a.Player = game.Cross
	b.Player = game.Nought
	ar := &Arena{
		game:       ttt.Initial(),
		A:          a,
		B:          b,
		name:       name,
		Statistics: makeStatistics(),
	}
	ar.logger = zerolog.New(&ar.buf)
	return ar
}

// Play plays a game from the empty board and returns the winner. If it is a draw, the
// returned player is game.Nobody. Every position after a move is passed to enc, if any.
func (a *Arena) Play(enc OutputEncoder) (winner game.Player, err error) {
	a.game = ttt.Initial()
	a.currentPlayer = a.A
	if a.B.Player == game.Cross {
		a.currentPlayer = a.B
	}

	a.logger.Info().Int("game", a.gameNumber).Str("cross", a.agentFor(game.Cross).name).Msg("playing")
	var ended bool
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		var next ttt.State
		if next, err = a.currentPlayer.Move(a.game); err != nil {
			return game.Nobody, errors.WithMessage(err, fmt.Sprintf("%s failed to move", a.currentPlayer.name))
		}
		if err = checkMove(a.game, next); err != nil {
			return game.Nobody, errors.WithMessage(err, fmt.Sprintf("%s made an illegal move", a.currentPlayer.name))
		}
		a.logger.Info().
			Str("agent", a.currentPlayer.name).
			Stringer("player", a.currentPlayer.Player).
			Int("cell", int(ttt.Diff(a.game, next))).
			Msg("move")
		a.game = next
		a.switchPlayer()
		if enc != nil {
			if err = enc.Encode(a); err != nil {
				return game.Nobody, errors.WithMessage(err, "Unable to encode position")
			}
		}
	}

	switch {
	case winner == game.Nobody:
		a.A.Draw++
		a.B.Draw++
	case winner == a.A.Player:
		a.A.Wins++
		a.B.Loss++
	case winner == a.B.Player:
		a.B.Wins++
		a.A.Loss++
	}
	a.logger.Info().Stringer("winner", winner).Msg("game over")

	if a.Alternate {
		a.A.Player, a.B.Player = a.B.Player, a.A.Player
	}
	return winner, nil
}

// Round resets both agents' tallies, plays games and records the tallies in Statistics.
func (a *Arena) Round(epoch, games int, enc OutputEncoder) error {
	a.epoch = epoch
	a.A.resetStats()
	a.B.resetStats()
	for a.gameNumber = 0; a.gameNumber < games; a.gameNumber++ {
		if _, err := a.Play(enc); err != nil {
			return err
		}
	}
	a.update(a.A)
	a.update(a.B)
	return nil
}

func (a *Arena) Epoch() int { return a.epoch }
func (a *Arena) GameNumber() int { return a.gameNumber }
func (a *Arena) Name() string { return a.name }
func (a *Arena) State() game.Board { return a.game }
func (a *Arena) Position() ttt.State { return a.game }

// Log writes the transcript of everything played so far.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
	fmt.Fprintf(w, "\n%s: wins %v, loss %v, draw %v\n", a.A.name, a.A.Wins, a.A.Loss, a.A.Draw)
	fmt.Fprintf(w, "%s: wins %v, loss %v, draw %v\n", a.B.name, a.B.Wins, a.B.Loss, a.B.Draw)
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}

func (a *Arena) agentFor(p game.Player) *Agent {
	if a.A.Player == p {
		return a.A
	}
	return a.B
}

// checkMove verifies that after follows before by exactly one legal placement.
func checkMove(before, after ttt.State) error {
	cell := ttt.Diff(before, after)
	if cell == game.NoCell {
		return errors.Errorf("%q does not follow %q by one placement", after, before)
	}
	if after.Cell(cell) != game.Colour(before.ToMove()) || after.ToMove() != game.Opponent(before.ToMove()) {
		return errors.Errorf("%q: wrong mark placed at %d", after, cell)
	}
	return nil
}
