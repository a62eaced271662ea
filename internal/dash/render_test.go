package dash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(mode Mode) frame {
	cfg := defaultConfig()
	cfg.ShowPercent = true
	return frame{
		mode: mode,
		cfg:  cfg,
		geom: newGeometry(cfg.Diameter*2, cfg.Diameter, cfg),
	}
}

func TestRenderEmptyGeometry(t *testing.T) {
	f := testFrame(ModeDownload)
	f.geom = geometry{}
	assert.Equal(t, "", f.render())
}

func TestRenderLineCount(t *testing.T) {
	for _, mode := range []Mode{
		ModeNone, ModeDownload, ModeTransitionTextAndCircle,
		ModeTransitionLine, ModeSuccess, ModeFailure, ModeUnknown,
	} {
		f := testFrame(mode)
		f.transition = 0.5
		out := f.render()
		require.NotEmpty(t, out, "mode %v", mode)
		assert.Len(t, strings.Split(out, "\n"), f.geom.rows, "mode %v", mode)
	}
}

func TestRenderShowsPercentLabel(t *testing.T) {
	f := testFrame(ModeDownload)
	f.progress = 0.5
	assert.Contains(t, f.render(), "50%")

	f.progress = 1
	assert.Contains(t, f.render(), "100%")
}

func TestRenderHidesLabelWhenDisabled(t *testing.T) {
	f := testFrame(ModeDownload)
	f.cfg.ShowPercent = false
	f.progress = 0.5
	assert.NotContains(t, f.render(), "%")
}

func TestRenderHidesLabelWhenItCannotFit(t *testing.T) {
	// At near-zero progress the inner circle is too small for any text.
	f := testFrame(ModeDownload)
	f.progress = 0.01
	assert.NotContains(t, f.render(), "%")
}

func TestRenderLabelShrinksDuringStageOne(t *testing.T) {
	f := testFrame(ModeTransitionTextAndCircle)
	f.next = ModeSuccess
	f.progress = 1

	f.transition = 1
	assert.Contains(t, f.render(), "100%", "label still visible at stage start")

	f.transition = 0.05
	assert.NotContains(t, f.render(), "%", "label collapsed to the dot")
}

func TestRenderTerminalGlyphsFillCells(t *testing.T) {
	for _, mode := range []Mode{ModeSuccess, ModeFailure, ModeUnknown} {
		f := testFrame(mode)
		f.transition = 1
		out := f.render()
		assert.Contains(t, out, "█", "mode %v draws its glyph", mode)
		assert.NotContains(t, out, "%", "mode %v has no label", mode)
	}
}

func TestProgressRadiusAndAlpha(t *testing.T) {
	f := testFrame(ModeDownload)

	f.progress = 0
	assert.Equal(t, 0.0, f.progressRadius())
	assert.Equal(t, 0, f.progressAlpha())

	f.progress = 0.5
	assert.InDelta(t, f.geom.innerRadius/2, f.progressRadius(), 1e-9)
	assert.Equal(t, 127, f.progressAlpha())

	f.progress = 1
	assert.Equal(t, f.geom.innerRadius, f.progressRadius())
	assert.Equal(t, 255, f.progressAlpha())
}
