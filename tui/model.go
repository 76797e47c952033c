// Package tui drives the navigator from a terminal.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifehistory/life"
)

const (
	aliveCell  = "██"
	deadCell   = "  "
	cellWidth  = len(deadCell)
	chartWidth = 60
)

var (
	boardStyle  = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg struct{ id int }

// Model is the bubbletea model. It is the navigator's Renderer and Chart.
type Model struct {
	nav *life.Navigator

	board  string
	stats  life.Stats
	series []float64

	painting bool
	jumping  bool
	input    string
	status   string

	playing bool
	playID  int
	speed   time.Duration
}

func New(s life.Settings, src life.Source, speed time.Duration) (*Model, error) {
	if speed <= 0 {
		speed = 100 * time.Millisecond
	}
	m := &Model{speed: speed}
	nav, err := life.NewNavigator(s, src, m, m)
	if err != nil {
		return nil, err
	}
	m.nav = nav
	return m, nil
}

func (m *Model) Navigator() *life.Navigator { return m.nav }

// Render implements life.Renderer.
func (m *Model) Render(g *life.Grid, _ int, s life.Stats) {
	var b strings.Builder
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(y, x) == 1 {
				b.WriteString(aliveCell)
			} else {
				b.WriteString(deadCell)
			}
		}
		if y < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	m.board = b.String()
	m.stats = s
}

// SetSeries implements life.Chart.
func (m *Model) SetSeries(p []float64) { m.series = p }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.jumping {
			return m, m.jumpKey(msg)
		}
		return m, m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	case tickMsg:
		if m.playing && msg.id == m.playID {
			m.nav.StepForward()
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "right", "l":
		m.nav.StepForward()
	case "left", "h":
		m.nav.StepBackward()
	case "r":
		m.nav.Reset()
	case "d":
		m.playing = false
		m.nav.ToggleDrawMode()
	case "g":
		m.jumping = true
		m.input = ""
	case "p", " ":
		return m.togglePlay()
	}
	return nil
}

func (m *Model) jumpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.jumping = false
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "enter":
		m.jumping = false
		gen, err := strconv.Atoi(m.input)
		if err != nil {
			m.status = fmt.Sprintf("%q is not a generation number", m.input)
			return nil
		}
		if err := m.nav.JumpTo(gen); err != nil {
			m.status = fmt.Sprintf("invalid generation number or jump difference exceeds %d steps: %v", life.MaxJump, err)
		}
	case "ctrl+c":
		return tea.Quit
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if (r >= '0' && r <= '9') || (r == '-' && m.input == "") {
					m.input += string(r)
				}
			}
		}
	}
	return nil
}

func (m *Model) togglePlay() tea.Cmd {
	if m.nav.DrawMode() {
		m.status = "autoplay is disabled in draw mode"
		return nil
	}
	m.playing = !m.playing
	if !m.playing {
		m.nav.Log().Add(m.nav.Generation(), life.EventPause, "Autoplay paused")
		return nil
	}
	m.playID++
	m.nav.Log().Add(m.nav.Generation(), life.EventPlay, "Autoplay started")
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id := m.playID
	return tea.Tick(m.speed, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// mouse handles wheel stepping and painting. The board is drawn from the
// top-left corner and every cell is cellWidth columns wide.
func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.StepForward()
		return
	case tea.MouseButtonWheelDown:
		m.nav.StepBackward()
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.painting = true
	case tea.MouseActionRelease:
		m.painting = false
		return
	case tea.MouseActionMotion:
		if !m.painting {
			return
		}
	}
	m.nav.PaintCell(msg.Y, msg.X/cellWidth)
}

func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(boardStyle.Render(m.board))
	s.WriteString("\n")

	var p strings.Builder
	p.WriteString(headerStyle.Render("Game of Life") + "\n")
	p.WriteString(labelStyle.Render("Generation") + valueStyle.Render(strconv.Itoa(m.stats.Generation)) + "\n")
	p.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d/%d (%.2f%%)", m.stats.Live, m.stats.Total, m.stats.Percent)) + "\n")
	p.WriteString(labelStyle.Render("Entropy") + valueStyle.Render(fmt.Sprintf("%.3f", m.stats.Entropy)) + "\n")
	mode := "evolve"
	if m.nav.DrawMode() {
		mode = "draw"
	} else if m.playing {
		mode = "playing"
	}
	p.WriteString(labelStyle.Render("Mode") + valueStyle.Render(mode) + "\n")
	if chart := plot(m.series); chart != "" {
		p.WriteString(graphStyle.Render(chart) + "\n")
	}
	for _, e := range m.nav.Log().Recent(3) {
		p.WriteString(helpStyle.Render(fmt.Sprintf("[Gen %d] %s: %s", e.Generation, e.Kind, e.Message)) + "\n")
	}
	if m.jumping {
		p.WriteString(valueStyle.Render("Jump to generation: "+m.input+"_") + "\n")
	}
	if m.status != "" {
		p.WriteString(errorStyle.Render(m.status) + "\n")
	}
	p.WriteString(helpStyle.Render("←/→ step · g jump · p play · d draw · r reset · q quit"))
	s.WriteString(statsStyle.Render(p.String()))
	return s.String()
}

func plot(series []float64) string {
	if len(series) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(6),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Caption("Percentage of population"),
	}
	if len(series) > chartWidth {
		opts = append(opts, asciigraph.Width(chartWidth))
	}
	return asciigraph.Plot(series, opts...)
}

// Run takes over the terminal until the user quits.
func Run(s life.Settings, src life.Source, speed time.Duration) error {
	m, err := New(s, src, speed)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
