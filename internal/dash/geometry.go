package dash

// cellAspect is how many terminal columns make up one logical unit. A cell
// is roughly twice as tall as it is wide, so circles drawn in logical space
// come out round on screen.
const cellAspect = 2.0

// geometry caches the values derived from the widget bounds and the
// configured stroke widths. It is recomputed whenever the bounds change and
// never mutated independently.
type geometry struct {
	cols, rows int

	size        float64 // drawable square side in logical units
	ringRadius  float64
	innerRadius float64
	center      float64 // both coordinates of the view center
	lineWidth   float64 // max length of the terminal-state line
}

// newGeometry derives the cache from the given bounds. Zero or negative
// bounds yield an empty geometry the renderer draws nothing for.
func newGeometry(cols, rows int, cfg Config) geometry {
	g := geometry{cols: cols, rows: rows}
	w := float64(cols) / cellAspect
	h := float64(rows)
	size := w
	if h < size {
		size = h
	}
	if size <= 0 {
		return g
	}
	g.size = size
	g.ringRadius = (size - cfg.RingWidth) / 2
	g.innerRadius = (size - cfg.RingWidth*2) / 2
	if g.ringRadius < 0 {
		g.ringRadius = 0
	}
	if g.innerRadius < 0 {
		g.innerRadius = 0
	}
	g.center = size / 2
	g.lineWidth = symbolWidthPercent * size
	return g
}

func (g geometry) empty() bool {
	return g.size <= 0
}
