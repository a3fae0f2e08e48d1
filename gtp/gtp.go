// Package gtp speaks a line-oriented text protocol modelled on the Go Text Protocol.
// Cells are numbered 1 to 9, row-major from the top left.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorgonia/tictac"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/pkg/errors"
)

// Engine holds the game being played over the protocol.
type Engine struct {
	g       ttt.State
	history []ttt.State

	known map[string]Command

	ch   chan string
	ret  chan string
	quit bool

	// Generate answers genmove. It is usually a *tictac.Engine.
	Generate      tictac.Mover
	name, version string
}

// New creates an Engine at the empty board. A nil known uses StandardLib.
func New(gen tictac.Mover, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:        ttt.Initial(),
		known:    known,
		Generate: gen,
		name:     name,
		version:  version,
	}
}

// Start runs the command loop. Every line sent on input yields exactly one response on
// output, except lines for which Ignored is true. After the response to quit, output is
// closed and further lines are read and discarded until the caller closes input.
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

func (e *Engine) State() ttt.State { return e.g }

func (e *Engine) start() {
	defer func() {
		for range e.ch {
		}
	}()
	defer close(e.ret)
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
		if e.quit {
			return
		}
	}
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	id, tokens := tokenize(cmd)
	if len(tokens) == 0 {
		return id, nil, nil, nil
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// tokenize splits a line into its optional numeric ID and the command tokens. id is -1 if
// there is no ID.
func tokenize(cmd string) (id int, tokens []string) {
	tokens = strings.Fields(preprocess(cmd))
	if len(tokens) == 0 {
		return -1, nil
	}
	var err error
	if id, err = strconv.Atoi(tokens[0]); err != nil {
		return -1, tokens
	}
	return id, tokens[1:]
}

// Ignored reports whether a line carries no command. The engine does not answer such lines.
func Ignored(line string) bool {
	_, tokens := tokenize(line)
	return len(tokens) == 0
}

// IsQuit reports whether a line is the quit command.
func IsQuit(line string) bool {
	_, tokens := tokenize(line)
	return len(tokens) > 0 && tokens[0] == "quit"
}

// advance records the current position and moves to next.
func (e *Engine) advance(next ttt.State) {
	e.history = append(e.history, e.g)
	e.g = next
}

func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
