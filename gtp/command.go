package gtp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

// concluder is implemented by movers that learn from finished games.
type concluder interface {
	Conclude(s ttt.State)
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string      { e.quit = true; return "" }
func showboard(e *Engine) string { return fmt.Sprintf("\n%v", e.g) }

func clearBoard(e *Engine) string {
	e.g = ttt.Initial()
	e.history = e.history[:0]
	return ""
}

func winner(e *Engine) string { return e.g.Winner().String() }

func finalStatus(e *Engine) string {
	ended, w := e.g.Ended()
	switch {
	case !ended:
		return "ongoing"
	case w == game.Nobody:
		return "draw"
	default:
		return fmt.Sprintf("%s wins", w)
	}
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func undo(e *Engine, args []string) (string, error) {
	if len(e.history) == 0 {
		return "", errors.New("cannot undo")
	}
	last := len(e.history) - 1
	e.g = e.history[last]
	e.history = e.history[:last]
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	p, err := parsePlayer(args[0])
	if err != nil {
		return "", err
	}
	if p != e.g.ToMove() {
		return "", errors.Errorf("illegal move: it is %s's turn", e.g.ToMove())
	}
	cell, err := strconv.Atoi(args[1])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse cell")
	}
	next, err := e.g.Play(game.Single(cell - 1))
	if err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	e.advance(next)
	if ended, _ := next.Ended(); ended {
		if c, ok := e.Generate.(concluder); ok {
			c.Conclude(next)
		}
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	p, err := parsePlayer(args[0])
	if err != nil {
		return "", err
	}
	if p != e.g.ToMove() {
		return "", errors.Errorf("it is %s's turn", e.g.ToMove())
	}
	next, err := e.Generate.Move(e.g)
	if err != nil {
		return "", err
	}
	cell := ttt.Diff(e.g, next)
	if cell == game.NoCell {
		return "", errors.Errorf("generator returned %q which does not follow %q", next, e.g)
	}
	e.advance(next)
	return strconv.Itoa(int(cell) + 1), nil
}

func parsePlayer(a string) (game.Player, error) {
	switch a {
	case "x", "b", "black":
		return game.Cross, nil
	case "o", "w", "white":
		return game.Nought, nil
	}
	return game.Nobody, errors.Errorf("invalid color %q", a)
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"winner":           stdlib(winner),
		"final_status":     stdlib(finalStatus),

		"known_command": stdlib2(knownCommand),
		"undo":          stdlib2(undo),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
	}
}
