package cli

import (
	"fmt"
	"math"
	"strings"
)

const barWidth = 20

// progressBar draws fraction (clamped to 0..1) as a bar of width cells.
func progressBar(fraction float64, width int) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func percent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Floor(fraction*100+1e-9)))
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
