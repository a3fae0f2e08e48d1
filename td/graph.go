package td

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
)

type statefulNode struct {
	ID      string
	Move    game.Single
	Player  game.Player
	Value   float64
	Visited bool
	Greedy  bool
	state   ttt.State
}

func (s *statefulNode) State() string {
	var buf bytes.Buffer
	board := s.state.Board()
	for i, c := range board {
		if i%ttt.Size == 0 {
			fmt.Fprint(&buf, "⎢ ")
		}
		fmt.Fprintf(&buf, "%s ", c)
		if (i+1)%ttt.Size == 0 {
			fmt.Fprint(&buf, "⎥<BR />")
		}
	}
	return buf.String()
}

// greedy picks the successor a frozen policy would prefer, taking the first of equals so
// the drawing is deterministic. It does not insert into the store.
func greedy(values *Values, turn game.Player, succs []ttt.State) int {
	best := 0
	bestValue, _ := values.Peek(succs[0])
	for i := 1; i < len(succs); i++ {
		v, _ := values.Peek(succs[i])
		if (Maximises(turn) && v > bestValue) || (!Maximises(turn) && v < bestValue) {
			best, bestValue = i, v
		}
	}
	return best
}

// ToDot draws the greedy line from start for up to depth plies. Every successor along the
// line is drawn with its stored value; only the preferred one is expanded.
// The store is read without being modified.
func ToDot(values *Values, start ttt.State, depth int) string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	var buf bytes.Buffer
	var id int
	add := func(n *statefulNode) {
		n.ID = fmt.Sprintf("n%d", id)
		id++
		tmpl.Execute(&buf, n)
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if n.Greedy {
			attrs["color"] = "blue"
		}
		g.AddNode("G", n.ID, attrs)
		buf.Reset()
	}

	v, ok := values.Peek(start)
	parent := &statefulNode{Move: game.NoCell, Player: start.ToMove(), Value: v, Visited: ok, Greedy: true, state: start}
	add(parent)

	s := start
	for ply := 0; ply < depth; ply++ {
		if ended, _ := s.Ended(); ended {
			break
		}
		succs := s.Successors()
		best := greedy(values, s.ToMove(), succs)
		var next *statefulNode
		for i, succ := range succs {
			v, ok := values.Peek(succ)
			n := &statefulNode{
				Move:    ttt.Diff(s, succ),
				Player:  succ.ToMove(),
				Value:   v,
				Visited: ok,
				Greedy:  i == best,
				state:   succ,
			}
			add(n)
			g.AddEdge(parent.ID, n.ID, true, nil)
			if i == best {
				next = n
			}
		}
		parent = next
		s = succs[best]
	}
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>To Move</TD><TD>{{.Player.String}}</TD></TR>
<TR><TD>Value</TD><TD>{{printf "%.3f" .Value}}</TD></TR>
<TR><TD>Visited</TD><TD>{{.Visited}}</TD></TR>
<TR><TD>State</TD><TD>{{.State}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
