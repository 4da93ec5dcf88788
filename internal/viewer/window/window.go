// internal/viewer/window/window.go
//
// Native window rendition of a figure, drawn with ebiten. RunGame owns the
// main thread until the window is closed, which is exactly the "show and
// block" behaviour the drawing command needs.

package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/kingrea/planmorph/internal/plot"
)

const (
	gridWidth  = 1
	frameWidth = 1
	tickTarget = 8
	// facePoints is the point size basicfont.Face7x13 stands in for.
	facePoints = 10
)

// Viewer opens one window per Show call.
type Viewer struct {
	Width  int
	Height int
}

// Show opens the window and blocks until it is closed, or Esc/q is pressed.
func (v Viewer) Show(fig plot.Figure) error {
	ebiten.SetWindowSize(v.Width, v.Height)
	ebiten.SetWindowTitle(fig.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newFigureGame(fig)); err != nil {
		return fmt.Errorf("window: run viewer: %w", err)
	}
	return nil
}

type figureGame struct {
	fig    plot.Figure
	bounds plot.Bounds
	face   text.Face
}

func newFigureGame(fig plot.Figure) *figureGame {
	return &figureGame{
		fig:    fig,
		bounds: fig.Bounds(),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *figureGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *figureGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *figureGame) Draw(screen *ebiten.Image) {
	screen.Fill(plot.White)
	size := screen.Bounds().Size()
	width, height := float64(size.X), float64(size.Y)

	area := plot.WindowMargins.Inset(width, height)
	tr := plot.NewTransform(g.bounds, area, g.fig.EqualAspect)
	frame := tr.Frame()

	if g.fig.Grid {
		g.drawGrid(screen, tr, frame)
	}
	vector.StrokeRect(screen, f32(frame.X), f32(frame.Y), f32(frame.W), f32(frame.H), frameWidth, plot.Black, false)

	for _, seg := range g.fig.Segments {
		x0, y0 := tr.Apply(seg.From)
		x1, y1 := tr.Apply(seg.To)
		if x0 == x1 && y0 == y1 {
			// StrokeLine draws nothing for a zero-length line.
			vector.DrawFilledCircle(screen, f32(x0), f32(y0), f32(seg.Width/2), seg.Color, true)
			continue
		}
		vector.StrokeLine(screen, f32(x0), f32(y0), f32(x1), f32(y1), f32(seg.Width), seg.Color, true)
	}
	for _, lbl := range g.fig.Labels {
		x, y := tr.Apply(lbl.At)
		// Anchor at the baseline-left, like a plotting library's text().
		scale := lbl.Scale(facePoints)
		g.drawScaledText(screen, lbl.Text, x, y-g.lineHeight()*scale, 0, scale, lbl.Color)
	}

	g.drawText(screen, g.fig.Title, width/2-g.textWidth(g.fig.Title)/2, frame.Y-2*g.lineHeight(), 0, plot.Black)
	g.drawText(screen, g.fig.XLabel, frame.X+frame.W/2-g.textWidth(g.fig.XLabel)/2, frame.Y+frame.H+2*g.lineHeight(), 0, plot.Black)
	g.drawText(screen, g.fig.YLabel, frame.X-4*g.lineHeight(), frame.Y+frame.H/2+g.textWidth(g.fig.YLabel)/2, -math.Pi/2, plot.Black)
}

func (g *figureGame) drawGrid(screen *ebiten.Image, tr plot.Transform, frame plot.Rect) {
	b := g.bounds
	xStep := plot.TickStep(b.MinX, b.MaxX, tickTarget)
	for _, v := range plot.Ticks(b.MinX, b.MaxX, tickTarget) {
		x, _ := tr.Apply(plot.Point{X: v, Y: b.MinY})
		vector.StrokeLine(screen, f32(x), f32(frame.Y), f32(x), f32(frame.Y+frame.H), gridWidth, plot.GridGray, false)
		label := plot.FormatTick(v, xStep)
		g.drawText(screen, label, x-g.textWidth(label)/2, frame.Y+frame.H+4, 0, plot.Black)
	}
	yStep := plot.TickStep(b.MinY, b.MaxY, tickTarget)
	for _, v := range plot.Ticks(b.MinY, b.MaxY, tickTarget) {
		_, y := tr.Apply(plot.Point{X: b.MinX, Y: v})
		vector.StrokeLine(screen, f32(frame.X), f32(y), f32(frame.X+frame.W), f32(y), gridWidth, plot.GridGray, false)
		label := plot.FormatTick(v, yStep)
		g.drawText(screen, label, frame.X-g.textWidth(label)-6, y-g.lineHeight()/2, 0, plot.Black)
	}
}

func (g *figureGame) drawText(screen *ebiten.Image, s string, x, y, angle float64, clr color.Color) {
	g.drawScaledText(screen, s, x, y, angle, 1, clr)
}

func (g *figureGame) drawScaledText(screen *ebiten.Image, s string, x, y, angle, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	if scale != 1 {
		op.GeoM.Scale(scale, scale)
	}
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *figureGame) textWidth(s string) float64 {
	w, _ := text.Measure(s, g.face, 0)
	return w
}

func (g *figureGame) lineHeight() float64 {
	return g.face.Metrics().HAscent + g.face.Metrics().HDescent
}

func f32(v float64) float32 { return float32(v) }
