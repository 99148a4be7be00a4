package plotter

import (
	"strconv"
	"strings"
)

// FormatDecimal formats v with at most three decimals and no trailing zeros:
// 5.375 -> "5.375", 1 -> "1", 0.5 -> "0.5".
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func itoa(i int) string { return strconv.Itoa(i) }
