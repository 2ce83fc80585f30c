package config

import "sort"

var Presets = map[string]*Config{
	"classroom": {
		Algorithm: "insertion", Speed: 0.5, Theme: "classic", HoldFinal: 2.0,
		Input: InputConfig{Mode: ModeRandom, Preset: "random", Length: 8, Min: 1, Max: 20},
	},
	"worst-case": {
		Algorithm: "bubble", Speed: 1.5, Theme: "classic", HoldFinal: 1.0,
		Input: InputConfig{Mode: ModeRandom, Preset: "reversed", Length: 12, Min: 1, Max: 100},
	},
	"nearly-sorted": {
		Algorithm: "insertion", Speed: 1.0, Theme: "ocean", HoldFinal: 1.0,
		Input: InputConfig{Mode: ModeRandom, Preset: "nearly-sorted", Length: 15, Min: 1, Max: 100},
	},
	"duplicates": {
		Algorithm: "selection", Speed: 1.0, Theme: "retro", HoldFinal: 1.0,
		Input: InputConfig{Mode: ModeRandom, Preset: "few-unique", Length: 12, Min: 1, Max: 9},
	},
	"tiny": {
		Algorithm: "bubble", Speed: 1.0, Theme: "minimal", HoldFinal: 1.0,
		Input: InputConfig{Mode: ModeCustom, Values: "2,1"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
