package sorting

import (
	"fmt"
	"strings"
)

// Kind names one of the supported algorithms.
type Kind int

const (
	Insertion Kind = iota
	Bubble
	Selection
)

var kindNames = map[Kind]string{
	Insertion: "Insertion Sort",
	Bubble:    "Bubble Sort",
	Selection: "Selection Sort",
}

var kindSlugs = map[Kind]string{
	Insertion: "insertion",
	Bubble:    "bubble",
	Selection: "selection",
}

var kindInfo = map[Kind]string{
	Insertion: "grow a sorted prefix one key at a time",
	Bubble:    "swap adjacent pairs until nothing moves",
	Selection: "pick the minimum of the unsorted rest",
}

// Kinds returns every algorithm in menu order.
func Kinds() []Kind {
	return []Kind{Insertion, Bubble, Selection}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slug is the short command-line name, e.g. "bubble".
func (k Kind) Slug() string { return kindSlugs[k] }

// Info is a one-line description for menus and listings.
func (k Kind) Info() string { return kindInfo[k] }

// ParseKind accepts a display name ("Bubble Sort") or a slug ("bubble"),
// ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if name == strings.ToLower(k.String()) || name == k.Slug() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds an engine of the given kind over a private copy of data.
func New(kind Kind, data []int) (Engine, error) {
	switch kind {
	case Insertion:
		return NewInsertionSort(data), nil
	case Bubble:
		return NewBubbleSort(data), nil
	case Selection:
		return NewSelectionSort(data), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}
