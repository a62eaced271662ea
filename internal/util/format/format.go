// Package format holds small string-formatting helpers for the status line.
package format

import (
	"fmt"
	"strconv"
)

// HumanizeBytes converts a byte count into a human-readable string (e.g., "1.5 MB").
func HumanizeBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	// Use a fixed buffer to avoid allocation
	var buf [20]byte
	frac := float64(b) / float64(div)
	s := strconv.AppendFloat(buf[:0], frac, 'f', 1, 64)
	suffix := []string{"KB", "MB", "GB", "TB"}[exp]
	return string(s) + " " + suffix
}

// Percent renders a progress fraction in [0,1] as a whole percentage,
// truncated the way the indicator's own label truncates. Unknown fractions
// (negative) render as a placeholder.
func Percent(p float64) string {
	if p < 0 {
		return "--%"
	}
	if p > 1 {
		p = 1
	}
	return fmt.Sprintf("%d%%", int(p*100))
}
