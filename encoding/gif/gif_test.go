package gif

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meta struct {
	s ttt.State
}

func (m meta) Name() string      { return "test" }
func (m meta) Epoch() int        { return 1 }
func (m meta) GameNumber() int   { return 2 }
func (m meta) State() game.Board { return m.s }

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 400, 400)
	assert.Error(t, enc.Flush())

	s := ttt.Initial()
	for _, cell := range []game.Single{0, 3, 1, 4, 2} {
		var err error
		s, err = s.Play(cell)
		require.NoError(t, err)
		require.NoError(t, enc.Encode(meta{s}))
	}
	assert.Equal(t, 5, enc.Frames())
	require.NoError(t, enc.Flush())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 5)
	assert.Equal(t, []int{0, 0, 0, 0, EndDelay}, g.Delay)
	b := g.Image[0].Bounds()
	assert.True(t, b.Dx() <= 400 && b.Dy() <= 400)
	assert.Equal(t, enc.W, b.Dx())
	assert.Equal(t, enc.H, b.Dy())
}
