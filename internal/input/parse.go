package input

import (
	"strconv"
	"strings"
)

// Parse reads a comma separated list of integers. Empty tokens are skipped;
// a single malformed token discards the whole input and yields an empty slice.
// Tokens must be plain decimal ints: digit separators ("1_000") and values
// outside the int range count as malformed.
func Parse(s string) []int {
	values := []int{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return []int{}
		}
		values = append(values, v)
	}
	return values
}

// Format renders values the way the input field accepts them.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Accepts reports whether r may be typed into the custom input field.
func Accepts(r rune) bool {
	return (r >= '0' && r <= '9') || r == ','
}
