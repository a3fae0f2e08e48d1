package tictac

import (
	"bytes"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/gorgonia/tictac/td"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeState(t *testing.T) {
	s := ttt.Encode(game.Nought, []game.Colour{
		ttt.X, ttt.Z, ttt.Z,
		ttt.Z, ttt.O, ttt.Z,
		ttt.Z, ttt.Z, ttt.Z,
	})
	want := []float32{
		1, 0, 0,
		0, -1, 0,
		0, 0, 0,

		-1, -1, -1,
		-1, -1, -1,
		-1, -1, -1,
	}
	if diff := cmp.Diff(want, EncodeState(s)); diff != "" {
		t.Errorf("EncodeState (-want +got):\n%s", diff)
	}
	assert.Equal(t, float32(1), EncodeState(ttt.Initial())[ttt.Cells])
}

func TestRotateBoard(t *testing.T) {
	//
	// ⎢ O · · · X ⎥
	// ⎢ · O · X · ⎥ // this line is to break rotational symmetry
	// ⎢ · · · · · ⎥
	// ⎢ · · · · · ⎥
	// ⎢ X · · · O ⎥

	m, n := 5, 5
	board := []float32{
		-1, 0, 0, 0, 1,
		0, -1, 0, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		1, 0, 0, 0, -1,
	}

	rot1, err := RotateBoard(board, m, n)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 0, -1}, rot1[:5], "the right column becomes the top row")

	rot2, err := RotateBoard(rot1, m, n)
	require.NoError(t, err)
	rot3, err := RotateBoard(rot2, m, n)
	require.NoError(t, err)
	rot4, err := RotateBoard(rot3, m, n)
	require.NoError(t, err)

	assert.Equal(t, board, rot4, "After 4 rotations the board should be the same")

	_, err = RotateBoard(board, 5, 4)
	assert.Error(t, err)
	_, err = RotateBoard(board[:4], 2, 3)
	assert.Error(t, err)
}

func TestSymmetries(t *testing.T) {
	s := ttt.Encode(game.Nought, []game.Colour{
		ttt.X, ttt.Z, ttt.Z,
		ttt.Z, ttt.Z, ttt.Z,
		ttt.Z, ttt.Z, ttt.Z,
	})
	ex := Example{Board: EncodeState(s), Value: 0.5}
	syms := Symmetries(ex)
	require.Len(t, syms, 8)
	assert.Equal(t, ex.Board, syms[0].Board)

	corners := make(map[int]bool)
	for _, sym := range syms {
		assert.Equal(t, float32(0.5), sym.Value)
		require.Len(t, sym.Board, Features*ttt.Cells)
		for i, v := range sym.Board[:ttt.Cells] {
			if v == 1 {
				corners[i] = true
			}
		}
		for _, v := range sym.Board[ttt.Cells:] {
			assert.Equal(t, float32(-1), v, "the player plane is unchanged")
		}
	}
	assert.Equal(t, map[int]bool{0: true, 2: true, 6: true, 8: true}, corners)
}

func TestExamplesAndTensors(t *testing.T) {
	values := td.NewValues(0.5)
	for _, s := range ttt.Initial().Successors() {
		values.Update(s, 1)
	}

	examples := Examples(values, nil)
	require.Len(t, examples, 9)
	assert.Equal(t, float32(0.5), examples[0].Value)

	augmented := Examples(values, Symmetries)
	assert.Len(t, augmented, 72)

	Xs, Vs, err := PrepareExamples(examples)
	require.NoError(t, err)
	assert.Equal(t, []int{9, Features, ttt.Size, ttt.Size}, []int(Xs.Shape()))
	assert.Equal(t, []int{9}, []int(Vs.Shape()))

	_, _, err = PrepareExamples(nil)
	assert.Error(t, err)
	_, _, err = PrepareExamples([]Example{{Board: []float32{1}}})
	assert.Error(t, err)
}

func TestWriteNpy(t *testing.T) {
	values := td.NewValues(0.5)
	values.Get(ttt.Initial())
	var boards, vals bytes.Buffer
	n, err := WriteNpy(values, nil, &boards, &vals)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, bytes.HasPrefix(boards.Bytes(), []byte("\x93NUMPY")))
	assert.True(t, bytes.HasPrefix(vals.Bytes(), []byte("\x93NUMPY")))

	_, err = WriteNpy(td.NewValues(0.5), nil, &boards, &vals)
	assert.Error(t, err)
}

func TestValidExample(t *testing.T) {
	assert.True(t, validExample(Example{Board: []float32{0, 1}, Value: 0}))
	nan := math32.NaN()
	assert.False(t, validExample(Example{Board: []float32{nan}}))
	assert.False(t, validExample(Example{Value: nan}))
}
