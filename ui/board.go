package ui

import (
	"image"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"lifehistory/life"
)

// Board shows the displayed generation and turns pointer input into
// callbacks. One image pixel is one fyne unit, so tap positions are the
// pixel coordinates the navigator expects.
type Board struct {
	widget.BaseWidget

	palette Palette
	img     *image.RGBA
	canvas  *canvas.Image

	// OnPaint receives the pointer position for taps and drags.
	OnPaint func(x, y float32)
	// OnScroll receives true for wheel-up, false for wheel-down.
	OnScroll func(forward bool)
}

func NewBoard(p Palette) *Board {
	b := &Board{palette: p}
	b.img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	b.canvas = canvas.NewImageFromImage(b.img)
	b.canvas.FillMode = canvas.ImageFillStretch
	b.canvas.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.canvas)
}

func (b *Board) MinSize() fyne.Size {
	r := b.img.Bounds()
	return fyne.NewSize(float32(r.Dx()), float32(r.Dy()))
}

func (b *Board) SetPalette(p Palette) { b.palette = p }

// Image returns the last drawn frame.
func (b *Board) Image() *image.RGBA { return b.img }

// Draw paints g with cellSize pixel squares, cell (i,j) at (j*cellSize, i*cellSize).
func (b *Board) Draw(g *life.Grid, cellSize int) {
	bounds := image.Rect(0, 0, g.Cols()*cellSize, g.Rows()*cellSize)
	if b.img.Bounds() != bounds {
		b.img = image.NewRGBA(bounds)
		b.canvas.Image = b.img
		b.canvas.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			square := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			draw.Draw(b.img, square, image.NewUniform(b.palette.cellColor(g.At(y, x))), image.Point{}, draw.Src)
		}
	}
	b.canvas.Refresh()
	b.Refresh()
}

func (b *Board) Tapped(ev *fyne.PointEvent) {
	if b.OnPaint != nil {
		b.OnPaint(ev.Position.X, ev.Position.Y)
	}
}

func (b *Board) Dragged(ev *fyne.DragEvent) {
	if b.OnPaint != nil {
		b.OnPaint(ev.Position.X, ev.Position.Y)
	}
}

func (b *Board) DragEnd() {}

func (b *Board) Scrolled(ev *fyne.ScrollEvent) {
	if b.OnScroll == nil || ev.Scrolled.DY == 0 {
		return
	}
	b.OnScroll(ev.Scrolled.DY > 0)
}
