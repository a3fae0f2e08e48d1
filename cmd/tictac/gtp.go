package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gorgonia/tictac/gtp"
	"github.com/spf13/cobra"
)

const version = "1.0"

var gtpCmd = &cobra.Command{
	Use:   "gtp",
	Short: "Speak the text protocol on stdin and stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, _, err := buildEngine()
		if err != nil {
			return err
		}
		return serveGTP(gtp.New(e, "tictac", version, nil), os.Stdin, os.Stdout)
	},
}

// serveGTP feeds every line of r to the protocol engine and writes its responses to w
// until r is exhausted or quit is received.
func serveGTP(e *gtp.Engine, r io.Reader, w io.Writer) error {
	input, output := e.Start()
	defer close(input)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if gtp.Ignored(line) {
			continue
		}
		input <- line
		resp, ok := <-output
		if !ok {
			return nil
		}
		fmt.Fprint(w, resp)
		if gtp.IsQuit(line) {
			return nil
		}
	}
	return scanner.Err()
}
