package dash

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// frame is the immutable per-frame snapshot the renderer works from. A
// render pass reads only this struct; nothing persistent is touched.
type frame struct {
	mode       Mode
	next       Mode
	progress   float64
	transition float64
	arcStart   float64
	geom       geometry
	cfg        Config
}

// render rasterizes one frame. Layers back to front: outer ring, inner
// circle, center content, indeterminate arc.
func (f frame) render() string {
	if f.geom.empty() {
		return ""
	}
	cv := newCanvas(f.geom.cols, f.geom.rows)
	center := point{x: f.geom.center, y: f.geom.center}

	cv.strokeCircle(center, f.geom.ringRadius, f.cfg.RingWidth, f.cfg.RingColor)
	f.drawInnerCircle(cv, center)
	f.drawCenterContent(cv, center)
	f.drawArc(cv, center)
	return cv.String()
}

// progressRadius is how far the inner circle had grown with the download,
// capped at the full inner radius.
func (f frame) progressRadius() float64 {
	r := f.geom.innerRadius * f.progress
	if r > f.geom.innerRadius {
		r = f.geom.innerRadius
	}
	return r
}

// progressAlpha maps the download progress onto [0, 255].
func (f frame) progressAlpha() int {
	a := int(maxAlpha * f.progress)
	if a < 0 {
		a = 0
	}
	if a > maxAlpha {
		a = maxAlpha
	}
	return a
}

func (f frame) drawInnerCircle(cv *canvas, center point) {
	var (
		radius float64
		color  RGB
	)
	switch f.mode {
	case ModeDownload:
		radius = f.progressRadius()
		color = f.cfg.SuccessColor.WithAlpha(f.progressAlpha(), f.cfg.Background)

	case ModeTransitionTextAndCircle, ModeTransitionLine:
		if f.next == ModeFailure || f.next == ModeUnknown {
			base := f.cfg.FailureColor
			if f.next == ModeUnknown {
				base = f.cfg.UnknownColor
			}
			if f.mode == ModeTransitionTextAndCircle {
				// Stage one ramps 1 -> 0, so the inverse is the blend factor
				// that carries radius and alpha from wherever the download
				// left off up to full.
				inv := 1 - f.transition
				radius = f.progressRadius() + (f.geom.innerRadius-f.progressRadius())*inv
				alpha := f.progressAlpha() + int(float64(maxAlpha-f.progressAlpha())*inv)
				color = base.WithAlpha(alpha, f.cfg.Background)
			} else {
				radius = f.geom.innerRadius
				color = base
			}
		} else {
			radius = f.geom.innerRadius
			color = f.cfg.SuccessColor
		}

	case ModeSuccess:
		radius, color = f.geom.innerRadius, f.cfg.SuccessColor
	case ModeFailure:
		radius, color = f.geom.innerRadius, f.cfg.FailureColor
	case ModeUnknown:
		radius, color = f.geom.innerRadius, f.cfg.UnknownColor
	default:
		return
	}
	cv.fillCircle(center, radius, color)
}

func (f frame) drawCenterContent(cv *canvas, center point) {
	switch f.mode {
	case ModeDownload, ModeTransitionTextAndCircle:
		// Once the shrinking label passes the collapse threshold the rest of
		// stage one shows the dot the next animation grows from.
		if f.mode == ModeTransitionTextAndCircle && f.transition < transitionStartValue*collapseThreshold {
			cv.fillDot(center, f.cfg.LineStroke/2, f.cfg.TextTo)
			return
		}
		if !f.cfg.ShowPercent {
			return
		}
		f.drawPercentLabel(cv, center)

	case ModeTransitionLine:
		length := f.geom.lineWidth * f.transition
		var a, b point
		if f.next == ModeSuccess {
			// Offset so the eventual tick joint lands at the view center:
			// short arm to the left, long arm to the right.
			a = point{x: center.x - tickShortArmRatio*length, y: center.y}
			b = point{x: center.x + tickLongArmRatio*length, y: center.y}
		} else {
			a = point{x: center.x - length/2, y: center.y}
			b = point{x: center.x + length/2, y: center.y}
		}
		cv.strokeSegment(a, b, f.cfg.LineStroke, f.cfg.TextTo)

	case ModeSuccess:
		f.drawTick(cv, center)
	case ModeFailure:
		f.drawCross(cv, center)
	case ModeUnknown:
		f.drawExclamation(cv, center)
	}
}

func (f frame) drawPercentLabel(cv *canvas, center point) {
	width := f.progressRadius() * 2
	if f.mode == ModeTransitionTextAndCircle {
		width = f.progressRadius() * f.transition * 2
	}
	target := width - textPadding
	if target <= 0 {
		return
	}

	text := fmt.Sprintf("%d%%", int(f.progress*100))
	size := FitSingleLineSize(text, measureLabel, target, 0, f.cfg.MaxTextSize, textFitPrecision)
	// Terminal glyphs have a single physical size; the fitted size gates
	// whether the label fits the circle at all.
	if size < 1 {
		return
	}

	color := f.cfg.TextTo
	if f.mode == ModeDownload {
		color = Blend(f.cfg.TextFrom, f.cfg.TextTo, f.progress)
	}
	cv.drawText(center, text, color)
}

// measureLabel is the widget's MeasureFunc: one cell is glyphAspect logical
// units wide, scaled by the candidate size.
func measureLabel(text string, size float64) float64 {
	return size * glyphAspect * float64(runewidth.StringWidth(text))
}

// drawTick draws the two-segment success tick. Both arm angles scale with
// the transition progress so the line folds into the tick; the short arm is
// anchored so the joint sits at the view center.
func (f frame) drawTick(cv *canvas, center point) {
	shortLen := tickShortArmRatio * f.geom.lineWidth
	longLen := tickLongArmRatio * f.geom.lineWidth
	theta := armAngleDegrees * f.transition

	shortStart := point{
		x: center.x - shortLen*cosDeg(theta),
		y: center.y,
	}
	joint := point{
		x: center.x,
		y: center.y + shortLen*sinDeg(theta),
	}
	longEnd := point{
		x: joint.x + longLen*cosDeg(-theta),
		y: joint.y + longLen*sinDeg(-theta),
	}
	cv.strokeSegment(shortStart, joint, f.cfg.LineStroke, f.cfg.TextTo)
	cv.strokeSegment(joint, longEnd, f.cfg.LineStroke, f.cfg.TextTo)
}

// drawCross draws four arms rotating out of the horizontal line, one per
// quadrant, at plus/minus armAngle and their 180-degree complements.
func (f frame) drawCross(cv *canvas, center point) {
	armLen := f.geom.lineWidth / 2
	theta := armAngleDegrees * f.transition
	for _, deg := range [4]float64{theta, -theta, 180 - theta, 180 + theta} {
		end := point{
			x: center.x + armLen*cosDeg(deg),
			y: center.y + armLen*sinDeg(deg),
		}
		cv.strokeSegment(center, end, f.cfg.LineStroke, f.cfg.TextTo)
	}
}

// drawExclamation rotates the two line halves toward vertical while a dot
// recedes from the lower end, forming the exclamation mark.
func (f frame) drawExclamation(cv *canvas, center point) {
	armLen := f.geom.lineWidth / 2
	theta := unknownRotationDegrees * f.transition

	up := point{
		x: center.x + armLen*cosDeg(-theta),
		y: center.y + armLen*sinDeg(-theta),
	}
	down := point{
		x: center.x + armLen*cosDeg(180-theta),
		y: center.y + armLen*sinDeg(180-theta),
	}
	dotDist := armLen + unknownDotDistance*f.transition
	dot := point{
		x: center.x + dotDist*cosDeg(180-theta),
		y: center.y + dotDist*sinDeg(180-theta),
	}
	cv.strokeSegment(center, up, f.cfg.LineStroke, f.cfg.TextTo)
	cv.strokeSegment(center, down, f.cfg.LineStroke, f.cfg.TextTo)
	cv.fillDot(dot, f.cfg.LineStroke/2, f.cfg.TextTo)
}

func (f frame) drawArc(cv *canvas, center point) {
	if f.mode != ModeDownload {
		return
	}
	radius := f.geom.ringRadius - f.cfg.RingWidth/2 - f.cfg.ArcWidth/2
	cv.strokeArc(center, radius, f.cfg.ArcWidth, f.arcStart, f.cfg.ArcLength, f.cfg.ArcColor)
}

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
