package tictac

import (
	"io"

	"github.com/chewxy/math32"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/gorgonia/tictac/td"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Features is the number of planes EncodeState produces: the board and the player to move.
const Features = 2

// EncodeTwoPlayerBoard encodes cross as 1, nought as -1 for each mark placed
func EncodeTwoPlayerBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// EncodeState encodes a state as two planes: the board, then a plane filled with 1 when
// Cross is to move and -1 when Nought is.
func EncodeState(s ttt.State) []float32 {
	_, cells := ttt.Decode(s)
	retVal := make([]float32, Features*ttt.Cells)
	EncodeTwoPlayerBoard(cells, retVal[:ttt.Cells])

	playerLayer := retVal[ttt.Cells:]
	for i := range playerLayer {
		playerLayer[i] = 1
	}
	if s.ToMove() == game.Nought {
		vecf32.Scale(playerLayer, -1)
	}
	return retVal
}

// RotateBoard rotates a square board a quarter turn anticlockwise.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	if len(board) != m*n {
		return nil, errors.Errorf("Expected a board of %d cells. Got %d", m*n, len(board))
	}
	retVal := make([]float32, len(board))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			// right to top
			retVal[i*n+j] = board[j*n+(m-i-1)]
		}
	}
	return retVal, nil
}

// FlipBoard mirrors a board left to right.
func FlipBoard(board []float32, m, n int) []float32 {
	retVal := make([]float32, len(board))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			retVal[i*n+j] = board[i*n+(n-j-1)]
		}
	}
	return retVal
}

// Symmetries is an Augmenter returning the eight rotations and reflections of an example,
// the unchanged example first. Every plane is transformed the same way.
func Symmetries(a Example) []Example {
	planes := len(a.Board) / ttt.Cells
	retVal := make([]Example, 0, 8)
	current := a.Board
	for r := 0; r < 4; r++ {
		retVal = append(retVal, Example{Board: current, Value: a.Value})

		flipped := make([]float32, 0, len(current))
		for p := 0; p < planes; p++ {
			flipped = append(flipped, FlipBoard(current[p*ttt.Cells:(p+1)*ttt.Cells], ttt.Size, ttt.Size)...)
		}
		retVal = append(retVal, Example{Board: flipped, Value: a.Value})

		next := make([]float32, 0, len(current))
		for p := 0; p < planes; p++ {
			rot, _ := RotateBoard(current[p*ttt.Cells:(p+1)*ttt.Cells], ttt.Size, ttt.Size)
			next = append(next, rot...)
		}
		current = next
	}
	return retVal
}

// Examples turns every stored state into an example. Examples with NaN or infinite values
// are skipped.
func Examples(values *td.Values, aug Augmenter) []Example {
	var retVal []Example
	values.Range(func(s ttt.State, v float64) bool {
		ex := Example{
			Board: EncodeState(s),
			Value: float32(v),
		}
		if !validExample(ex) {
			return true
		}
		if aug != nil {
			retVal = append(retVal, aug(ex)...)
		} else {
			retVal = append(retVal, ex)
		}
		return true
	})
	return retVal
}

// PrepareExamples packs examples into a (N, Features, 3, 3) board tensor and a (N) value tensor.
func PrepareExamples(examples []Example) (Xs, Values *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, errors.New("No examples to prepare")
	}
	XsBacking := make([]float32, 0, len(examples)*Features*ttt.Cells)
	ValuesBacking := make([]float32, 0, len(examples))
	for _, ex := range examples {
		if len(ex.Board) != Features*ttt.Cells {
			return nil, nil, errors.Errorf("Expected examples of %d features. Got %d", Features*ttt.Cells, len(ex.Board))
		}
		XsBacking = append(XsBacking, ex.Board...)
		ValuesBacking = append(ValuesBacking, ex.Value)
	}
	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(len(examples), Features, ttt.Size, ttt.Size))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(len(examples)))
	return Xs, Values, nil
}

// WriteNpy exports the store as two numpy arrays: encoded boards and their values.
func WriteNpy(values *td.Values, aug Augmenter, boards, vals io.Writer) (n int, err error) {
	examples := Examples(values, aug)
	Xs, Vs, err := PrepareExamples(examples)
	if err != nil {
		return 0, err
	}
	if err = Xs.WriteNpy(boards); err != nil {
		return 0, errors.WithMessage(err, "Unable to write boards")
	}
	if err = Vs.WriteNpy(vals); err != nil {
		return 0, errors.WithMessage(err, "Unable to write values")
	}
	return len(examples), nil
}

func validExample(ex Example) bool {
	if math32.IsInf(ex.Value, 0) || math32.IsNaN(ex.Value) {
		return false
	}
	for _, v := range ex.Board {
		if math32.IsInf(v, 0) {
			return false
		}
		if math32.IsNaN(v) {
			return false
		}
	}
	return true
}
