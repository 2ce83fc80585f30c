package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Palette holds SVG fill colors for the three bar tiers.
type Palette struct {
	Background string
	Default    string
	Sorted     string
	Active     string
	Text       string
}

var DefaultPalette = Palette{
	Background: "#000000",
	Default:    "#ffffff",
	Sorted:     "#00ff00",
	Active:     "#ff0000",
	Text:       "#ffffff",
}

// BarHeight scales v against the frame maximum. Non-positive maxima and
// values give an empty bar.
func BarHeight(v, maxVal int, full float64) float64 {
	if maxVal <= 0 || v <= 0 {
		return 0
	}
	return float64(v) / float64(maxVal) * full
}

// MaxValue returns the largest value, or 0 for an empty frame.
func MaxValue(values []int) int {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Fill picks the tier color for index i of s.
func (p Palette) Fill(s sorting.Snapshot, i int) string {
	switch {
	case s.IsActive(i):
		return p.Active
	case s.IsSorted(i):
		return p.Sorted
	}
	return p.Default
}

// SnapshotToSVG renders one frame as a standalone bar chart.
func SnapshotToSVG(s sorting.Snapshot, width, height int, p Palette) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background))
	writeBars(&sb, s, 0, float64(width), float64(height), p)
	sb.WriteString("</svg>")
	return sb.String()
}

// WriteFrame writes snapshot index of r as a standalone SVG. Negative
// indices count back from the last frame.
func WriteFrame(w io.Writer, r *session.Result, index, width, height int, p Palette) error {
	n := len(r.Snapshots)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d of %d", ErrFrameRange, index, n)
	}
	_, err := io.WriteString(w, SnapshotToSVG(r.Snapshots[index], width, height, p)+"\n")
	return err
}

// WriteStrip renders every frame as one row of a single SVG, top to bottom.
func WriteStrip(w io.Writer, snaps []sorting.Snapshot, width, rowHeight int, p Palette) error {
	height := rowHeight * max(len(snaps), 1)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background))
	for i, s := range snaps {
		sb.WriteString(fmt.Sprintf(`<g id="step-%d" transform="translate(0 %d)">
`, i, i*rowHeight))
		writeBars(&sb, s, 0, float64(width), float64(rowHeight), p)
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeBars(sb *strings.Builder, s sorting.Snapshot, x0, width, height float64, p Palette) {
	n := len(s.Values)
	if n == 0 {
		return
	}
	labelRoom := 14.0
	full := height - labelRoom - 2
	barW := width / float64(n)
	maxVal := MaxValue(s.Values)
	for i, v := range s.Values {
		h := BarHeight(v, maxVal, full)
		x := x0 + float64(i)*barW
		y := height - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW-1, h, p.Fill(s, i)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" text-anchor="middle">%d</text>
`, x+barW/2, y-2, p.Text, v))
	}
}
