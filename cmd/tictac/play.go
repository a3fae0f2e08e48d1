package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gorgonia/tictac"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the engine in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, _, err := buildEngine()
		if err != nil {
			return err
		}
		second, _ := cmd.Flags().GetBool("second")
		c := newConsole(e, os.Stdin, termenv.NewOutput(os.Stdout))
		return c.run(!second)
	},
}

func init() {
	playCmd.Flags().Bool("second", false, "Let the engine move first")
}

// console is an interactive game loop. Cells are typed as 1 to 9, row-major from the top left.
type console struct {
	e   *tictac.Engine
	in  *bufio.Scanner
	out *termenv.Output
}

func newConsole(e *tictac.Engine, in io.Reader, out *termenv.Output) *console {
	return &console{e: e, in: bufio.NewScanner(in), out: out}
}

// run plays games until the input is exhausted or the player types q.
func (c *console) run(humanFirst bool) error {
	for {
		more, err := c.game(humanFirst)
		if err != nil || !more {
			return err
		}
		fmt.Fprint(c.out, "Again? [Y/n] ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		if a := strings.ToLower(strings.TrimSpace(c.in.Text())); a == "n" || a == "q" {
			return nil
		}
	}
}

// game plays one game. It returns false if the player quit.
func (c *console) game(humanFirst bool) (bool, error) {
	s := c.e.Initial()
	human := game.Cross
	if !humanFirst {
		human = game.Nought
	}
	for {
		if ended, winner := s.Ended(); ended {
			c.draw(s)
			c.announce(winner, human)
			return true, nil
		}
		if s.ToMove() != human {
			next, err := c.e.Reply(s)
			if err != nil {
				return false, err
			}
			s = next
			continue
		}

		c.draw(s)
		fmt.Fprintf(c.out, "Your move (%s), 1-9: ", human)
		if !c.in.Scan() {
			return false, c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "q" {
			return false, nil
		}
		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, c.out.String("Type a number from 1 to 9, or q to quit.").Faint())
			continue
		}
		next, err := s.Play(game.Single(cell - 1))
		if err != nil {
			fmt.Fprintln(c.out, c.out.String(err.Error()).Faint())
			continue
		}
		s = next
		if ended, _ := s.Ended(); ended {
			c.e.Conclude(s)
		}
	}
}

func (c *console) draw(s ttt.State) {
	cross := c.out.Color("#E03C31")
	nought := c.out.Color("#1F4EB4")
	board := s.Board()
	fmt.Fprintln(c.out)
	for r := 0; r < ttt.Size; r++ {
		cells := make([]string, ttt.Size)
		for col := 0; col < ttt.Size; col++ {
			i := r*ttt.Size + col
			switch board[i] {
			case ttt.X:
				cells[col] = c.out.String("X").Foreground(cross).Bold().String()
			case ttt.O:
				cells[col] = c.out.String("O").Foreground(nought).Bold().String()
			default:
				cells[col] = c.out.String(strconv.Itoa(i + 1)).Faint().String()
			}
		}
		fmt.Fprintf(c.out, " %s\n", strings.Join(cells, " | "))
		if r < ttt.Size-1 {
			fmt.Fprintln(c.out, "---+---+---")
		}
	}
	fmt.Fprintln(c.out)
}

func (c *console) announce(winner, human game.Player) {
	switch winner {
	case game.Nobody:
		fmt.Fprintln(c.out, "Draw.")
	case human:
		fmt.Fprintln(c.out, c.out.String("You win!").Bold())
	default:
		fmt.Fprintln(c.out, c.out.String("The engine wins.").Bold())
	}
}
