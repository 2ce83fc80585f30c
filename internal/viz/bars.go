package viz

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/export"
)

// Renderer draws one frame of a sort.
type Renderer interface {
	Render(values []int, boundary int, active []int) string
}

// eighths are partial block glyphs for the fractional top of a bar.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// BarRenderer draws vertical bars scaled against the frame's own maximum,
// with a value label above each bar. Colors follow three tiers: active,
// sorted (index <= boundary), default.
type BarRenderer struct {
	Width, Height int
	Theme         Theme
}

// Render returns Height+1 lines: a label row plus Height bar rows.
func (r BarRenderer) Render(values []int, boundary int, active []int) string {
	n := len(values)
	if n == 0 || r.Width <= 0 || r.Height <= 0 {
		return r.Theme.subtle().Render("no data")
	}

	barW := max(1, r.Width/n-1)
	gap := 1
	if r.Width/n <= 1 {
		gap = 0
	}
	maxVal := export.MaxValue(values)
	rows := make([][]string, r.Height+1)

	for i, v := range values {
		style := lipgloss.NewStyle().Foreground(r.tier(i, boundary, active))
		h := export.BarHeight(v, maxVal, float64(r.Height))
		full := int(h)
		frac := int(math.Round((h - float64(full)) * 8))
		if frac == 8 {
			full, frac = full+1, 0
		}
		top := r.Height - full
		if frac > 0 {
			top--
		}
		for row := 0; row <= r.Height; row++ {
			cell := strings.Repeat(" ", barW)
			switch {
			case row == top:
				cell = centerLabel(strconv.Itoa(v), barW)
			case row > top && row > r.Height-full:
				cell = style.Render(strings.Repeat("█", barW))
			case row > top:
				cell = style.Render(strings.Repeat(string(eighths[frac]), barW))
			}
			rows[row] = append(rows[row], cell+strings.Repeat(" ", gap))
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (r BarRenderer) tier(i, boundary int, active []int) lipgloss.Color {
	switch {
	case slices.Contains(active, i):
		return r.Theme.Active
	case i <= boundary:
		return r.Theme.Sorted
	}
	return r.Theme.Bar
}

func centerLabel(s string, width int) string {
	if len(s) > width {
		s = s[:width]
	}
	pad := width - len(s)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}
