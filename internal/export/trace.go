package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	ErrUnknownFormat = errors.New("export: unknown format")
	ErrFrameRange    = errors.New("export: frame out of range")
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatSVG   Format = "svg"
)

func Formats() []Format {
	return []Format{FormatTable, FormatCSV, FormatJSON, FormatSVG}
}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write renders a session result in format f.
func Write(w io.Writer, f Format, r *session.Result) error {
	switch f {
	case FormatTable:
		return WriteTable(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatSVG:
		return WriteStrip(w, r.Snapshots, 640, 120, DefaultPalette)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func WriteTable(w io.Writer, r *session.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tBOUNDARY\tACTIVE\tVALUES")
	for i, s := range r.Snapshots {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i, s.Boundary, joinInts(s.Active, " "), joinInts(s.Values, " "))
	}
	return tw.Flush()
}

func WriteCSV(w io.Writer, r *session.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"step", "boundary", "active"}
	for i := range r.Input {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range r.Snapshots {
		row := []string{strconv.Itoa(i), strconv.Itoa(s.Boundary), joinInts(s.Active, " ")}
		for _, v := range s.Values {
			row = append(row, strconv.Itoa(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type traceJSON struct {
	Algorithm string             `json:"algorithm"`
	Input     []int              `json:"input"`
	Metrics   map[string]float64 `json:"metrics"`
	Snapshots []sorting.Snapshot `json:"snapshots"`
}

func WriteJSON(w io.Writer, r *session.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(traceJSON{
		Algorithm: r.Kind.String(),
		Input:     r.Input,
		Metrics:   r.Metrics,
		Snapshots: r.Snapshots,
	})
}

// Chart plots a per-step series, e.g. inversions remaining.
func Chart(series []float64, caption string, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
