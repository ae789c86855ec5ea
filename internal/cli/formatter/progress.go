package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%, colored by the style
// passed in. pct is a fraction in [0, 1].
func RenderProgress(pct float64, width int, style func(...string) string) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, style), clampFraction(pct)*100)
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
func RenderCompactBar(pct float64, width int, style func(...string) string) string {
	pct = clampFraction(pct)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if style == nil {
		return bar
	}
	return style(bar)
}

func clampFraction(pct float64) float64 {
	return min(max(pct, 0), 1)
}
