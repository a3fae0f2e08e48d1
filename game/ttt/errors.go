package ttt

import (
	"fmt"

	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
)

var (
	ErrOccupied   = errors.New("cell is occupied")
	ErrOutOfRange = errors.New("cell is out of range")
	ErrGameOver   = errors.New("game is over")
)

type moveError struct {
	move game.PlayerMove
	err  error
}

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v: %v", err.move, err.err)
}

// Cause allows errors.Cause to recover the sentinel error.
func (err moveError) Cause() error { return err.err }

func (err moveError) Unwrap() error { return err.err }
