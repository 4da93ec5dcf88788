// internal/viewer/terminal/model.go
//
// Full-screen terminal rendition of a figure. Walls are drawn on an ntcharts
// braille canvas (2x4 dots per cell, which keeps dots roughly square so equal
// aspect still holds), labels are overlaid as text, and the program blocks
// until the user closes it.

package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/planmorph/internal/plot"
)

const (
	// rows used by title, y label, x ticks, x label and help
	chromeRows = 5
	minCols    = 10
	minRows    = 3
)

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "close"),
		),
	}
}

type styles struct {
	title lipgloss.Style
	axis  lipgloss.Style
	ink   map[ink]lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		ink: map[ink]lipgloss.Style{
			inkNone:  lipgloss.NewStyle(),
			inkGrid:  lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
			inkFrame: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
			// Black on a light terminal, white on a dark one.
			inkWall:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}),
			inkLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		},
	}
}

// Model is the bubbletea model for one figure.
type Model struct {
	fig    plot.Figure
	keys   keyMap
	help   help.Model
	styles styles

	width  int
	height int
}

// NewModel builds a model that shows fig.
func NewModel(fig plot.Figure) Model {
	return Model{
		fig:    fig,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
	}
}

// Init is called once when the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizes and the close keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.styles.title.Render(m.fig.Title)
	}

	bounds := m.fig.Bounds()
	rows := max(minRows, m.height-chromeRows)
	yTicks := plot.Ticks(bounds.MinY, bounds.MaxY, yTickTarget(rows))
	yStep := plot.TickStep(bounds.MinY, bounds.MaxY, yTickTarget(rows))
	gutter := 0
	for _, v := range yTicks {
		gutter = max(gutter, len(plot.FormatTick(v, yStep)))
	}
	gutter++

	cols := max(minCols, m.width-gutter)
	canvas, tr := m.draw(cols, rows)

	yLabels := make([]string, rows)
	for _, v := range yTicks {
		_, py := tr.Apply(plot.Point{X: bounds.MinX, Y: v})
		row := clamp(int(math.Round(py))/4, 0, rows-1)
		yLabels[row] = plot.FormatTick(v, yStep)
	}

	gutterLines := make([]string, rows)
	for row := range gutterLines {
		gutterLines[row] = padLeft(yLabels[row], gutter-1) + " "
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.title.Render(m.fig.Title)))
	b.WriteString("\n")
	b.WriteString(m.styles.axis.Render(m.fig.YLabel))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.axis.Render(strings.Join(gutterLines, "\n")),
		canvas.render(m.styles.ink),
	))
	b.WriteString("\n")
	b.WriteString(m.styles.axis.Render(strings.Repeat(" ", gutter) + m.xTickLine(tr, cols)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.axis.Render(m.fig.XLabel)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// draw paints the figure onto a fresh canvas of cols x rows cells.
func (m Model) draw(cols, rows int) (*brailleCanvas, plot.Transform) {
	canvas := newBrailleCanvas(cols, rows)
	w, h := canvas.resolution()
	bounds := m.fig.Bounds()
	tr := plot.NewTransform(bounds, plot.Rect{W: float64(w), H: float64(h)}, m.fig.EqualAspect)
	frame := tr.Frame()
	left := clamp(int(math.Round(frame.X)), 0, w-1)
	top := clamp(int(math.Round(frame.Y)), 0, h-1)
	right := clamp(int(math.Round(frame.X+frame.W)), 0, w-1)
	bottom := clamp(int(math.Round(frame.Y+frame.H)), 0, h-1)

	if m.fig.Grid {
		for _, v := range plot.Ticks(bounds.MinX, bounds.MaxX, xTickTarget(cols)) {
			px, _ := m.toDots(tr, plot.Point{X: v, Y: bounds.MinY}, w, h)
			for y := top; y <= bottom; y += 2 {
				canvas.set(px, y, inkGrid)
			}
		}
		for _, v := range plot.Ticks(bounds.MinY, bounds.MaxY, yTickTarget(rows)) {
			_, py := m.toDots(tr, plot.Point{X: bounds.MinX, Y: v}, w, h)
			for x := left; x <= right; x += 2 {
				canvas.set(x, py, inkGrid)
			}
		}
	}

	canvas.line(left, top, right, top, inkFrame)
	canvas.line(right, top, right, bottom, inkFrame)
	canvas.line(right, bottom, left, bottom, inkFrame)
	canvas.line(left, bottom, left, top, inkFrame)

	for _, seg := range m.fig.Segments {
		x0, y0 := m.toDots(tr, seg.From, w, h)
		x1, y1 := m.toDots(tr, seg.To, w, h)
		canvas.line(x0, y0, x1, y1, inkWall)
	}
	for _, lbl := range m.fig.Labels {
		px, py := m.toDots(tr, lbl.At, w, h)
		canvas.label(px/2, py/4, lbl.Text, inkLabel)
	}
	return canvas, tr
}

func (m Model) toDots(tr plot.Transform, p plot.Point, w, h int) (int, int) {
	x, y := tr.Apply(p)
	return clamp(int(math.Round(x)), 0, w-1), clamp(int(math.Round(y)), 0, h-1)
}

func (m Model) xTickLine(tr plot.Transform, cols int) string {
	bounds := tr.Bounds()
	target := xTickTarget(cols)
	step := plot.TickStep(bounds.MinX, bounds.MaxX, target)
	line := []rune(strings.Repeat(" ", cols))
	next := 0
	for _, v := range plot.Ticks(bounds.MinX, bounds.MaxX, target) {
		x, _ := tr.Apply(plot.Point{X: v, Y: bounds.MinY})
		label := []rune(plot.FormatTick(v, step))
		start := clamp(int(math.Round(x))/2-len(label)/2, 0, max(0, cols-len(label)))
		if start < next {
			continue
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}
	return string(line)
}

func xTickTarget(cols int) int { return max(2, cols/10) }
func yTickTarget(rows int) int { return max(2, rows/3) }

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
