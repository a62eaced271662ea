package dash

// MeasureFunc reports the rendered width of text at a candidate size, in the
// same units as the fit target. It must be non-decreasing in size.
type MeasureFunc func(text string, size float64) float64

// FitSingleLineSize binary-searches [low, high] for the largest size at
// which the measured text still fits targetWidth, narrowing until the
// interval is below precision and returning its lower bound. Targets wider
// than the text at high converge to high; targets narrower than the text at
// low converge to low. Deterministic, no caching.
func FitSingleLineSize(text string, measure MeasureFunc, targetWidth, low, high, precision float64) float64 {
	if high-low < precision {
		return low
	}
	mid := (low + high) / 2
	switch w := measure(text, mid); {
	case w > targetWidth:
		return FitSingleLineSize(text, measure, targetWidth, low, mid, precision)
	case w < targetWidth:
		return FitSingleLineSize(text, measure, targetWidth, mid, high, precision)
	default:
		return mid
	}
}
