// Package gif renders the positions of played games as frames of an animated GIF.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Epoch 100000, Game Number: 10000`

	// EndDelay is how long, in hundredths of a second, the final position of a game is shown.
	EndDelay = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var (
	bannerColour = color.RGBA{0x1f, 0x4e, 0xb4, 0xff}
	globPalette  = color.Palette{
		color.Gray{253},
		color.Gray{0},
		bannerColour,
	}
)

// Encoder accumulates one frame per position it is given and writes the animation on Flush.
// It satisfies tictac.OutputEncoder.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	w   io.Writer

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewEncoder creates an Encoder writing to w. Frames are at most h by wd pixels.
func NewEncoder(w io.Writer, h, wd int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: wd,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: 0},
		w:   w,
	}
}

func (enc *Encoder) init(repr string) {
	enc.Drawer.Face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	// first calculate how long the max length will be
	splits := strings.Split(repr, "\n")
	maxW := maxInt(font.MeasureString(enc.Face, splits[0]).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
	dy := lineHeight()
	w := maxW + 2*enc.padW
	h := (len(splits)+3)*dy + 2*enc.padH // game name, epoch and winner

	w = minInt(w, enc.maxW)
	h = minInt(h, enc.maxH)
	if w == enc.maxW {
		enc.padW = 0
	}
	if h == enc.maxH {
		enc.padH = 0
	}
	enc.H = h
	enc.W = w
	enc.initialized = true
}

// Encode draws the current position of ms as a new frame.
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	repr := strings.TrimRight(fmt.Sprintf("%s", g), "\n")
	if !enc.initialized {
		enc.init(repr)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im
	enc.Src = image.Black

	dy := lineHeight()
	y := enc.padH + dy
	for _, s := range strings.Split(repr, "\n") {
		enc.line(s, y)
		y += dy
	}
	enc.line(ms.Name(), y)
	y += dy
	enc.line(fmt.Sprintf("Epoch %d, Game Number: %d", ms.Epoch(), ms.GameNumber()), y)
	y += dy

	var delay int
	if ended, winner := g.Ended(); ended {
		delay = EndDelay
		enc.Src = image.NewUniform(bannerColour)
		if winner == game.Nobody {
			enc.line("Draw", y)
		} else {
			enc.line(fmt.Sprintf("Winner: %s", winner), y)
		}
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes the gif into the writer.
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("Nothing to encode")
	}
	return gif.EncodeAll(enc.w, enc.out)
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

func (enc *Encoder) line(s string, y int) {
	enc.Dot = fixed.P(enc.padW, y)
	enc.DrawString(s)
}

func lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
