package render

import (
	"strconv"
	"strings"
)

// formatCount renders counters compactly: 999 -> "999", 1000 -> "1k",
// 1500 -> "1.5k", 1000000 -> "1M". A trailing ".0" is dropped.
func formatCount(n int) string {
	scaled := func(v float64, suffix string) string {
		s := strconv.FormatFloat(v, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return s + suffix
	}

	switch {
	case n >= 1000000:
		return scaled(float64(n)/1000000, "M")
	case n >= 1000:
		return scaled(float64(n)/1000, "k")
	default:
		return strconv.Itoa(n)
	}
}

// coord formats a document coordinate for SVG output.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
