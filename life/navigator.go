package life

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// MaxJump bounds how far JumpTo may move from the current generation.
const MaxJump = 1000

// Renderer draws the displayed generation. It must not keep g after returning.
type Renderer interface {
	Render(g *Grid, cellSize int, s Stats)
}

// Chart displays the population percentage series up to the cursor.
type Chart interface {
	SetSeries(percentages []float64)
}

// Settings are the board dimensions and seeding parameters.
type Settings struct {
	Cols     int
	Rows     int
	CellSize int     // pixels per cell edge
	Density  float64 // probability a seeded cell starts alive
}

func (s Settings) validate(op string) error {
	switch {
	case s.Cols < 1 || s.Rows < 1:
		return &ValidationError{Op: op, Reason: fmt.Sprintf("grid must be at least 1x1, got %dx%d", s.Cols, s.Rows)}
	case s.CellSize < 1:
		return &ValidationError{Op: op, Reason: fmt.Sprintf("cell size must be positive, got %d", s.CellSize)}
	case s.Density < 0 || s.Density > 1 || math.IsNaN(s.Density):
		return &ValidationError{Op: op, Reason: fmt.Sprintf("density must be within [0,1], got %v", s.Density)}
	}
	return nil
}

// Navigator owns the grid history and the cursor into it. It is not safe
// for concurrent use; every call is expected from the UI thread.
type Navigator struct {
	settings Settings
	drawMode bool
	history  History
	cursor   int
	src      Source
	renderer Renderer
	chart    Chart
	log      EventLog
}

// NewNavigator seeds generation 1 and pushes it to renderer and chart.
// Either observer may be nil; a nil src seeds from the clock.
func NewNavigator(s Settings, src Source, renderer Renderer, chart Chart) (*Navigator, error) {
	if err := s.validate("new"); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := &Navigator{settings: s, src: src, renderer: renderer, chart: chart}
	n.log.Add(1, EventReset, fmt.Sprintf("Seeded %dx%d grid", s.Cols, s.Rows))
	n.reseed()
	return n, nil
}

// Attach replaces the observers and pushes the current state to them.
func (n *Navigator) Attach(renderer Renderer, chart Chart) {
	n.renderer = renderer
	n.chart = chart
	n.refresh()
}

func (n *Navigator) Settings() Settings { return n.settings }

func (n *Navigator) DrawMode() bool { return n.drawMode }

// Generation is the 1-based cursor.
func (n *Navigator) Generation() int { return n.cursor }

// Cached is the number of stored generations.
func (n *Navigator) Cached() int { return n.history.Len() }

// Current returns the displayed grid. Callers must treat it as read-only.
func (n *Navigator) Current() *Grid { return n.mustGet(n.cursor) }

func (n *Navigator) Stats() Stats { return Measure(n.Current(), n.cursor) }

// Series returns the population series up to and including the cursor.
func (n *Navigator) Series() []float64 { return n.history.SeriesTo(n.cursor) }

func (n *Navigator) Log() *EventLog { return &n.log }

// Reset reseeds the grid with the current settings.
func (n *Navigator) Reset() {
	n.log.Add(1, EventReset, "Grid reseeded")
	n.reseed()
}

// UpdateSettings resizes the board and always discards history.
func (n *Navigator) UpdateSettings(cols, rows, cellSize int) error {
	s := n.settings
	s.Cols, s.Rows, s.CellSize = cols, rows, cellSize
	if err := s.validate("settings"); err != nil {
		return err
	}
	n.settings = s
	n.log.Add(1, EventResize, fmt.Sprintf("Grid resized to %dx%d, %dpx cells", cols, rows, cellSize))
	n.reseed()
	return nil
}

// ToggleDrawMode flips draw mode and reseeds: empty when drawing, random otherwise.
func (n *Navigator) ToggleDrawMode() bool {
	n.drawMode = !n.drawMode
	if n.drawMode {
		n.log.Add(1, EventDraw, "Draw mode enabled")
	} else {
		n.log.Add(1, EventDraw, "Draw mode disabled")
	}
	n.reseed()
	return n.drawMode
}

// StepForward moves to the next generation, computing it if not cached.
func (n *Navigator) StepForward() {
	n.advance()
	n.refresh()
}

// StepBackward moves to the previous cached generation. It reports false
// at generation 1.
func (n *Navigator) StepBackward() bool {
	if n.cursor <= 1 {
		return false
	}
	n.cursor--
	n.refresh()
	return true
}

// JumpTo moves the cursor to target. Cached generations are reached
// directly; later ones are computed one step at a time from the end of
// history.
func (n *Navigator) JumpTo(target int) error {
	if target < 1 {
		return &ValidationError{Op: "jump", Reason: fmt.Sprintf("generation %d does not exist", target)}
	}
	if d := target - n.cursor; d > MaxJump || -d > MaxJump {
		return &ValidationError{Op: "jump", Reason: fmt.Sprintf("distance %d exceeds %d generations", d, MaxJump)}
	}
	from := n.cursor
	if target <= n.history.Len() {
		n.cursor = target
	} else {
		n.cursor = n.history.Len()
		for n.cursor < target {
			n.advance()
		}
	}
	if from != target {
		n.log.Add(target, EventJump, fmt.Sprintf("Jumped from %d", from))
	}
	n.refresh()
	return nil
}

// EditCell paints the cell under pixel (x, y) alive. It only acts in draw
// mode and ignores points outside the board. Generations cached past the
// cursor are dropped so stepping forward recomputes from the edit.
func (n *Navigator) EditCell(x, y float64) bool {
	if !n.drawMode || x < 0 || y < 0 {
		return false
	}
	col := int(math.Floor(x / float64(n.settings.CellSize)))
	row := int(math.Floor(y / float64(n.settings.CellSize)))
	return n.PaintCell(row, col)
}

// PaintCell sets (row, col) alive on the displayed generation. Same rules as EditCell.
func (n *Navigator) PaintCell(row, col int) bool {
	if !n.drawMode {
		return false
	}
	g := n.Current()
	if !g.InBounds(row, col) {
		return false
	}
	g.set(row, col, 1)
	n.must(n.history.Recount(n.cursor))
	if n.history.Len() > n.cursor {
		n.must(n.history.TruncateAfter(n.cursor))
		n.log.Add(n.cursor, EventEdit, "Edited grid, later generations discarded")
	}
	n.refresh()
	return true
}

func (n *Navigator) reseed() {
	var g *Grid
	if n.drawMode {
		g = NewGrid(n.settings.Rows, n.settings.Cols)
	} else {
		g = RandomGrid(n.settings.Rows, n.settings.Cols, n.settings.Density, n.src)
	}
	n.history.Seed(g)
	n.cursor = 1
	n.refresh()
}

func (n *Navigator) advance() {
	if n.cursor >= n.history.Len() {
		n.history.Append(Step(n.history.Last()))
	}
	n.cursor++
}

func (n *Navigator) refresh() {
	if n.renderer != nil {
		g := n.Current()
		n.renderer.Render(g, n.settings.CellSize, Measure(g, n.cursor))
	}
	if n.chart != nil {
		n.chart.SetSeries(n.Series())
	}
}

func (n *Navigator) mustGet(gen int) *Grid {
	g, err := n.history.Get(gen)
	n.must(err)
	return g
}

func (n *Navigator) must(err error) {
	if err != nil {
		panic(fmt.Sprintf("navigator invariant broken: %v", err))
	}
}
