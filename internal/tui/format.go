package tui

import (
	"strconv"
	"strings"
)

// formatDecimal prints v in its shortest form, keeping one fractional digit
// on whole numbers ("12.0", "0.05").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

// formatPlain prints v in its shortest form ("35", "0.25").
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
