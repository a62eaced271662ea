package dash

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// point is a position in logical (square) space. The y axis grows downward,
// matching both screen rows and the angle convention used by the arc and the
// terminal-state glyphs: 0 degrees at 3 o'clock, growing clockwise.
type point struct {
	x, y float64
}

type cell struct {
	ch  rune
	fg  RGB
	set bool
}

// canvas rasterizes logical-space primitives onto a grid of terminal cells.
// Every painter samples at the cell's center and paints with a plain
// predicate, so a render pass is a pure function of its inputs.
type canvas struct {
	cols, rows int
	cells      []cell
}

func newCanvas(cols, rows int) *canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// at returns the logical-space sample point for a cell.
func (c *canvas) at(col, row int) point {
	return point{x: (float64(col) + 0.5) / cellAspect, y: float64(row) + 0.5}
}

func (c *canvas) put(col, row int, ch rune, fg RGB) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, fg: fg, set: true}
}

// paint sets every cell whose sample point satisfies the predicate.
func (c *canvas) paint(fg RGB, hit func(p point) bool) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if hit(c.at(col, row)) {
				c.put(col, row, '█', fg)
			}
		}
	}
}

// fillCircle paints the disc of the given radius.
func (c *canvas) fillCircle(center point, radius float64, fg RGB) {
	if radius <= 0 {
		return
	}
	c.paint(fg, func(p point) bool {
		return dist(p, center) <= radius
	})
}

// strokeCircle paints a circle outline of the given stroke width.
func (c *canvas) strokeCircle(center point, radius, width float64, fg RGB) {
	if radius <= 0 {
		return
	}
	half := strokeHalf(width)
	c.paint(fg, func(p point) bool {
		return math.Abs(dist(p, center)-radius) <= half
	})
}

// strokeArc paints the part of a circle outline between startDeg and
// startDeg+sweepDeg (clockwise).
func (c *canvas) strokeArc(center point, radius, width, startDeg, sweepDeg float64, fg RGB) {
	if radius <= 0 || sweepDeg <= 0 {
		return
	}
	half := strokeHalf(width)
	c.paint(fg, func(p point) bool {
		if math.Abs(dist(p, center)-radius) > half {
			return false
		}
		delta := math.Mod(angleDeg(p, center)-startDeg, circleDegrees)
		if delta < 0 {
			delta += circleDegrees
		}
		return delta <= sweepDeg
	})
}

// strokeSegment paints a line segment of the given stroke width.
func (c *canvas) strokeSegment(a, b point, width float64, fg RGB) {
	half := strokeHalf(width)
	c.paint(fg, func(p point) bool {
		return segmentDist(p, a, b) <= half
	})
}

// fillDot paints a small disc, always hitting at least the cell under its
// center so the dot never vanishes between samples.
func (c *canvas) fillDot(center point, radius float64, fg RGB) {
	c.fillCircle(center, radius, fg)
	c.put(int(center.x*cellAspect), int(center.y), '█', fg)
}

// drawText places a label with its visual center at the given point,
// overwriting whatever is underneath.
func (c *canvas) drawText(center point, text string, fg RGB) {
	row := int(center.y)
	col := int(center.x*cellAspect) - runewidth.StringWidth(text)/2
	for _, ch := range text {
		c.put(col, row, ch, fg)
		col += runewidth.RuneWidth(ch)
	}
}

// String renders the canvas, styling runs of same-colored cells together.
func (c *canvas) String() string {
	if c.cols == 0 || c.rows == 0 {
		return ""
	}
	styles := make(map[RGB]lipgloss.Style)
	styleFor := func(fg RGB) lipgloss.Style {
		st, ok := styles[fg]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex()))
			styles[fg] = st
		}
		return st
	}

	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		var run strings.Builder
		var runFg RGB
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(styleFor(runFg).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if !cl.set {
				flush()
				b.WriteByte(' ')
				continue
			}
			if run.Len() > 0 && cl.fg != runFg {
				flush()
			}
			runFg = cl.fg
			run.WriteRune(cl.ch)
		}
		flush()
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// strokeHalf widens very thin strokes enough that a one-cell-tall line still
// hits the sample grid.
func strokeHalf(width float64) float64 {
	half := width / 2
	if half < 0.5 {
		half = 0.5
	}
	return half
}

func dist(a, b point) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// angleDeg returns the angle of p around center in [0, 360), clockwise from
// 3 o'clock.
func angleDeg(p, center point) float64 {
	deg := math.Atan2(p.y-center.y, p.x-center.x) * 180 / math.Pi
	if deg < 0 {
		deg += circleDegrees
	}
	return deg
}

// segmentDist is the distance from p to the segment ab.
func segmentDist(p, a, b point) float64 {
	abx, aby := b.x-a.x, b.y-a.y
	apx, apy := p.x-a.x, p.y-a.y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return dist(p, a)
	}
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dist(p, point{x: a.x + t*abx, y: a.y + t*aby})
}
