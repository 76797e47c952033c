package ui

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifehistory/life"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	a := test.NewTempApp(t)
	c, err := New(a, Options{
		Settings: life.Settings{Cols: 12, Rows: 8, CellSize: 10, Density: 0.5},
		Palette:  "Classic",
		Speed:    100 * time.Millisecond,
	}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadSettings(t *testing.T) {
	a := test.NewTempApp(t)
	_, err := New(a, Options{Settings: life.Settings{Cols: 0, Rows: 8, CellSize: 10}}, nil)
	assert.True(t, life.IsValidation(err))
}

func TestBoardDrawsGenerationOne(t *testing.T) {
	c := newController(t)
	img := c.board.Image()
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())

	g := c.nav.Current()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			want := color.RGBA{0, 0, 0, 255}
			if g.At(row, col) == 1 {
				want = color.RGBA{255, 255, 255, 255}
			}
			assert.Equal(t, want, img.RGBAAt(col*10+5, row*10+5), "cell (%d,%d)", row, col)
		}
	}
	assert.Equal(t, "Generation: 1", c.generationLabel.Text)
	assert.Contains(t, c.populationLabel.Text, "/96 (")
}

func TestKeysNavigate(t *testing.T) {
	c := newController(t)
	c.HandleKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	c.HandleKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 3, c.nav.Generation())
	assert.Equal(t, "Generation: 3", c.generationLabel.Text)

	c.HandleKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 2, c.nav.Generation())

	c.HandleKey(&fyne.KeyEvent{Name: fyne.KeyR})
	assert.Equal(t, 1, c.nav.Generation())
	assert.Equal(t, 1, c.nav.Cached())
}

func TestWheelSteps(t *testing.T) {
	c := newController(t)
	c.board.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 3)})
	assert.Equal(t, 2, c.nav.Generation())
	c.board.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -3)})
	assert.Equal(t, 1, c.nav.Generation())
	c.board.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -3)})
	assert.Equal(t, 1, c.nav.Generation())
}

func TestTapPaintsOnlyInDrawMode(t *testing.T) {
	c := newController(t)
	before := c.nav.Current().Matrix()
	c.board.Tapped(&fyne.PointEvent{Position: fyne.NewPos(15, 25)})
	assert.Equal(t, before, c.nav.Current().Matrix())

	c.ToggleDraw()
	assert.Equal(t, "Disable Draw Mode", c.drawButton.Text)
	assert.Equal(t, 0, c.nav.Current().Alive())

	c.board.Tapped(&fyne.PointEvent{Position: fyne.NewPos(15, 25)})
	c.board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(35, 25)}})
	c.board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(500, 500)}})
	assert.Equal(t, uint8(1), c.nav.Current().At(2, 1))
	assert.Equal(t, uint8(1), c.nav.Current().At(2, 3))
	assert.Equal(t, 2, c.nav.Current().Alive())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.board.Image().RGBAAt(15, 25))
}

func TestJumpFieldValidation(t *testing.T) {
	c := newController(t)
	c.Jump("abc")
	c.Jump("-3")
	c.Jump("5000")
	assert.Equal(t, 1, c.nav.Generation())

	c.Jump(" 7 ")
	assert.Equal(t, 7, c.nav.Generation())
	assert.Equal(t, "Generation: 7", c.generationLabel.Text)
}

func TestApplySettingsResizesBoard(t *testing.T) {
	c := newController(t)
	c.nav.StepForward()

	c.ApplySettings("8", "6", "4")
	assert.Equal(t, image.Rect(0, 0, 32, 24), c.board.Image().Bounds())
	assert.Equal(t, 1, c.nav.Generation())

	c.ApplySettings("x", "6", "4")
	c.ApplySettings("0", "6", "4")
	assert.Equal(t, 8, c.nav.Settings().Cols)
}

func TestAutoplayTicks(t *testing.T) {
	c := newController(t)
	c.tick(time.Second)
	assert.Equal(t, 1, c.nav.Generation())

	c.TogglePlay()
	require.True(t, c.Playing())
	c.tick(60 * time.Millisecond)
	assert.Equal(t, 1, c.nav.Generation())
	c.tick(50 * time.Millisecond)
	assert.Equal(t, 2, c.nav.Generation())

	c.ToggleDraw()
	assert.False(t, c.Playing())
	c.TogglePlay()
	assert.False(t, c.Playing())
	c.tick(time.Second)
	assert.Equal(t, 1, c.nav.Generation())
}

func TestEventLogShown(t *testing.T) {
	c := newController(t)
	c.ToggleDraw()
	assert.Contains(t, c.eventLog.Text, "DRAW: Draw mode enabled")
}

func TestPaletteByName(t *testing.T) {
	p, ok := PaletteByName("Ocean")
	assert.True(t, ok)
	assert.Equal(t, "Ocean", p.Name)

	p, ok = PaletteByName("nope")
	assert.False(t, ok)
	assert.Equal(t, "Classic", p.Name)
	assert.Len(t, PaletteNames(), len(palettes))
}
