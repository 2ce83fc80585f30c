package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/playback"
)

const (
	sliderRow    = 1
	sliderMargin = 2
)

// sliderTrack is the track rectangle for a screen of the given width.
// It occupies one terminal row at sliderRow.
func sliderTrack(width int) playback.Rect {
	w := max(width-2*sliderMargin, 10)
	return playback.Rect{X: sliderMargin, Y: sliderRow, W: float64(w), H: 1}
}

// renderSlider draws the track row with the knob on it.
func renderSlider(c *playback.Controller, t Theme) string {
	track := c.Track()
	knob := c.Knob()
	lo := int(track.X)
	cells := int(track.W)
	knobFrom := int(math.Floor(knob.X)) - lo
	knobTo := max(knobFrom, int(math.Ceil(knob.X+knob.W))-lo-1)
	knobFrom = min(knobFrom, cells-1)
	knobTo = min(knobTo, cells-1)

	trackStyle := lipgloss.NewStyle().Foreground(t.Track)
	knobStyle := lipgloss.NewStyle().Foreground(t.Knob).Bold(true)
	if c.State() == playback.Dragging {
		knobStyle = knobStyle.Foreground(t.Accent)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lo))
	b.WriteString(trackStyle.Render(strings.Repeat("━", max(knobFrom, 0))))
	b.WriteString(knobStyle.Render(strings.Repeat("█", knobTo-knobFrom+1)))
	b.WriteString(trackStyle.Render(strings.Repeat("━", max(cells-knobTo-1, 0))))
	return b.String()
}

// speedLabel reads e.g. "Speed: 1.00x   Delay: 1.00s".
func speedLabel(c *playback.Controller) string {
	return fmt.Sprintf("Speed: %.2fx   Delay: %.2fs", c.Speed(), c.Delay())
}
