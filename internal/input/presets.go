package input

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
)

var ErrUnknownPreset = errors.New("input: unknown preset")

// Generator builds an input of length n with values in [lo, hi].
type Generator func(rng *rand.Rand, n, lo, hi int) []int

var Presets = map[string]Generator{
	"random": Random,
	"sorted": func(rng *rand.Rand, n, lo, hi int) []int {
		v := Random(rng, n, lo, hi)
		slices.Sort(v)
		return v
	},
	"reversed": func(rng *rand.Rand, n, lo, hi int) []int {
		v := Random(rng, n, lo, hi)
		slices.Sort(v)
		slices.Reverse(v)
		return v
	},
	"nearly-sorted": func(rng *rand.Rand, n, lo, hi int) []int {
		v := Random(rng, n, lo, hi)
		slices.Sort(v)
		if n > 1 {
			for range max(1, n/5) {
				i := rng.Intn(n - 1)
				v[i], v[i+1] = v[i+1], v[i]
			}
		}
		return v
	},
	"few-unique": func(rng *rand.Rand, n, lo, hi int) []int {
		pool := Random(rng, 3, lo, hi)
		v := make([]int, max(n, 0))
		for i := range v {
			v[i] = pool[rng.Intn(len(pool))]
		}
		return v
	},
}

// Preset runs the named generator.
func Preset(name string, rng *rand.Rand, n, lo, hi int) ([]int, error) {
	gen, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return gen(rng, n, lo, hi), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
