package tictac

import (
	"encoding/csv"
	"os"
	"strconv"
)

type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 2),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(A *Agent) {
	aname := A.name

	if _, ok := s.Wins[aname]; !ok {
		s.Creation = append(s.Creation, aname)
	}

	s.Wins[aname] = append(s.Wins[aname], A.Wins)
	s.Losses[aname] = append(s.Losses[aname], A.Loss)
	s.Draws[aname] = append(s.Draws[aname], A.Draw)
}

// Rounds returns the number of recorded rounds.
func (s *Statistics) Rounds() int {
	if len(s.Creation) == 0 {
		return 0
	}
	return len(s.Wins[s.Creation[0]])
}

// Records lays the statistics out as CSV rows: a header, then one row per round with each
// agent's win, loss and draw rates.
func (s *Statistics) Records() [][]string {
	header := []string{"round"}
	for _, agent := range s.Creation {
		header = append(header, agent+"_win", agent+"_loss", agent+"_draw")
	}
	records := [][]string{header}
	for j := 0; j < s.Rounds(); j++ {
		record := []string{strconv.Itoa(j)}
		for _, agent := range s.Creation {
			win, loss, draw := s.Wins[agent][j], s.Losses[agent][j], s.Draws[agent][j]
			total := win + loss + draw
			if total == 0 {
				total = 1
			}
			record = append(record,
				strconv.FormatFloat(float64(win/total), 'f', 3, 32),
				strconv.FormatFloat(float64(loss/total), 'f', 3, 32),
				strconv.FormatFloat(float64(draw/total), 'f', 3, 32),
			)
		}
		records = append(records, record)
	}
	return records
}

func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(s.Records()); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
