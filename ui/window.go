package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"lifehistory/life"
)

const (
	tickInterval = 10 * time.Millisecond
	chartWidth   = 420
	chartHeight  = 240
)

type Options struct {
	Settings life.Settings
	Palette  string
	Speed    time.Duration // time between generations while playing
}

// Controller wires the navigator to one fyne window.
type Controller struct {
	window fyne.Window
	nav    *life.Navigator
	board  *Board
	chart  *PopulationChart

	generationLabel *widget.Label
	populationLabel *widget.Label
	statsLabel      *widget.Label
	eventLog        *widget.Label

	colsEntry *widget.Entry
	rowsEntry *widget.Entry
	cellEntry *widget.Entry
	jumpEntry *widget.Entry

	drawButton *widget.Button
	playButton *widget.Button

	playing bool
	speed   time.Duration
	elapsed time.Duration
	stop    chan struct{}
}

// New builds the window content. The autoplay ticker is only started by Run.
func New(a fyne.App, opts Options, src life.Source) (*Controller, error) {
	palette, _ := PaletteByName(opts.Palette)
	c := &Controller{
		window:          a.NewWindow("Game of Life - Generation Explorer"),
		board:           NewBoard(palette),
		chart:           NewPopulationChart(chartWidth, chartHeight),
		generationLabel: widget.NewLabel(""),
		populationLabel: widget.NewLabel(""),
		statsLabel:      widget.NewLabel(""),
		eventLog:        widget.NewLabel(""),
		speed:           opts.Speed,
		stop:            make(chan struct{}),
	}
	if c.speed <= 0 {
		c.speed = 100 * time.Millisecond
	}
	c.eventLog.Wrapping = fyne.TextWrapWord

	nav, err := life.NewNavigator(opts.Settings, src, c, c.chart)
	if err != nil {
		return nil, err
	}
	c.nav = nav

	c.board.OnPaint = func(x, y float32) {
		c.nav.EditCell(float64(x), float64(y))
	}
	c.board.OnScroll = func(forward bool) {
		if forward {
			c.nav.StepForward()
		} else {
			c.nav.StepBackward()
		}
	}
	c.window.Canvas().SetOnTypedKey(c.HandleKey)
	c.window.SetContent(c.layout(palette))
	c.window.SetOnClosed(func() { close(c.stop) })
	c.redraw()
	return c, nil
}

func (c *Controller) Window() fyne.Window { return c.window }

func (c *Controller) Navigator() *life.Navigator { return c.nav }

func (c *Controller) layout(palette Palette) fyne.CanvasObject {
	s := c.nav.Settings()
	c.colsEntry = widget.NewEntry()
	c.colsEntry.SetText(strconv.Itoa(s.Cols))
	c.rowsEntry = widget.NewEntry()
	c.rowsEntry.SetText(strconv.Itoa(s.Rows))
	c.cellEntry = widget.NewEntry()
	c.cellEntry.SetText(strconv.Itoa(s.CellSize))
	settingsForm := widget.NewForm(
		widget.NewFormItem("Width", c.colsEntry),
		widget.NewFormItem("Height", c.rowsEntry),
		widget.NewFormItem("Cell size", c.cellEntry),
	)
	settingsForm.SubmitText = "Apply Settings"
	settingsForm.OnSubmit = func() {
		c.ApplySettings(c.colsEntry.Text, c.rowsEntry.Text, c.cellEntry.Text)
	}

	c.jumpEntry = widget.NewEntry()
	c.jumpEntry.SetPlaceHolder("Generation")
	c.jumpEntry.OnSubmitted = c.Jump
	jumpButton := widget.NewButton("Jump", func() { c.Jump(c.jumpEntry.Text) })

	prevButton := widget.NewButton("◀ Previous", func() { c.nav.StepBackward() })
	nextButton := widget.NewButton("Next ▶", func() { c.nav.StepForward() })
	resetButton := widget.NewButton("Reset", func() { c.nav.Reset() })
	c.drawButton = widget.NewButton("Enable Draw Mode", c.ToggleDraw)
	c.playButton = widget.NewButton("▶ Play", c.TogglePlay)
	helpButton := widget.NewButton("❓ How it works?", c.showHelp)

	paletteSelect := widget.NewSelect(PaletteNames(), func(name string) {
		p, _ := PaletteByName(name)
		c.board.SetPalette(p)
		c.redraw()
	})
	paletteSelect.SetSelected(palette.Name)

	controls := container.NewVBox(
		container.NewGridWithColumns(3, prevButton, nextButton, resetButton),
		container.NewGridWithColumns(3, c.playButton, c.drawButton, helpButton),
		container.NewBorder(nil, nil, nil, jumpButton, c.jumpEntry),
		paletteSelect,
		settingsForm,
	)

	stats := container.NewVBox(
		c.generationLabel,
		c.populationLabel,
		c.statsLabel,
		widget.NewSeparator(),
		widget.NewLabel("📜 Event Log"),
		c.eventLog,
	)

	right := container.NewVBox(c.chart.Image, stats)

	return container.NewBorder(
		nil,
		controls,
		nil,
		right,
		container.NewCenter(c.board),
	)
}

// Render implements life.Renderer.
func (c *Controller) Render(g *life.Grid, cellSize int, s life.Stats) {
	c.board.Draw(g, cellSize)
	c.generationLabel.SetText(fmt.Sprintf("Generation: %d", s.Generation))
	c.populationLabel.SetText(fmt.Sprintf("Population: %d/%d (%.2f%%)", s.Live, s.Total, s.Percent))
	c.statsLabel.SetText(fmt.Sprintf("Entropy: %.3f", s.Entropy))
	if c.nav != nil {
		c.eventLog.SetText(formatEvents(c.nav.Log().Recent(3)))
	}
}

func (c *Controller) redraw() {
	if c.nav == nil {
		return
	}
	c.Render(c.nav.Current(), c.nav.Settings().CellSize, c.nav.Stats())
}

func formatEvents(events []life.Event) string {
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "[Gen %d] %s: %s\n", e.Generation, e.Kind, e.Message)
	}
	return b.String()
}

// HandleKey maps ArrowRight/ArrowLeft/R/Space to navigator calls.
func (c *Controller) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyRight:
		c.nav.StepForward()
	case fyne.KeyLeft:
		c.nav.StepBackward()
	case fyne.KeyR:
		c.nav.Reset()
	case fyne.KeySpace:
		c.TogglePlay()
	}
}

// Jump parses a generation number and moves there, showing a dialog on failure.
func (c *Controller) Jump(text string) {
	gen, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		dialog.ShowError(fmt.Errorf("%q is not a generation number", text), c.window)
		return
	}
	if err := c.nav.JumpTo(gen); err != nil {
		dialog.ShowError(fmt.Errorf("invalid generation number or jump difference exceeds %d steps: %w", life.MaxJump, err), c.window)
	}
}

// ApplySettings parses the settings form and rebuilds the board.
func (c *Controller) ApplySettings(cols, rows, cell string) {
	var vals [3]int
	for i, text := range []string{cols, rows, cell} {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			dialog.ShowError(fmt.Errorf("%q is not a number", text), c.window)
			return
		}
		vals[i] = v
	}
	if err := c.nav.UpdateSettings(vals[0], vals[1], vals[2]); err != nil {
		dialog.ShowError(err, c.window)
	}
}

// ToggleDraw switches draw mode; autoplay stops while drawing.
func (c *Controller) ToggleDraw() {
	if c.playing {
		c.TogglePlay()
	}
	if c.nav.ToggleDrawMode() {
		c.drawButton.SetText("Disable Draw Mode")
		c.playButton.Disable()
	} else {
		c.drawButton.SetText("Enable Draw Mode")
		c.playButton.Enable()
	}
}

func (c *Controller) Playing() bool { return c.playing }

func (c *Controller) TogglePlay() {
	if c.nav.DrawMode() {
		return
	}
	c.playing = !c.playing
	c.elapsed = 0
	if c.playing {
		c.playButton.SetText("⏸ Pause")
		c.nav.Log().Add(c.nav.Generation(), life.EventPlay, "Autoplay started")
	} else {
		c.playButton.SetText("▶ Play")
		c.nav.Log().Add(c.nav.Generation(), life.EventPause, "Autoplay paused")
	}
	c.redraw()
}

// tick advances autoplay by d; it must run on the UI thread.
func (c *Controller) tick(d time.Duration) {
	if !c.playing || c.nav.DrawMode() {
		return
	}
	c.elapsed += d
	if c.elapsed < c.speed {
		return
	}
	c.elapsed = 0
	c.nav.StepForward()
}

func (c *Controller) startTicker() {
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(func() { c.tick(tickInterval) })
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Controller) showHelp() {
	helpLabel := widget.NewLabel(helpText)
	helpLabel.Wrapping = fyne.TextWrapWord

	scrollHelp := container.NewScroll(helpLabel)
	scrollHelp.SetMinSize(fyne.NewSize(600, 400))

	d := dialog.NewCustom("How it works?", "Close", scrollHelp, c.window)
	d.Show()
}

// Run opens the desktop window and blocks until it is closed.
func Run(opts Options, src life.Source) error {
	a := app.New()
	c, err := New(a, opts, src)
	if err != nil {
		return err
	}
	c.startTicker()
	c.window.CenterOnScreen()
	c.window.ShowAndRun()
	return nil
}
