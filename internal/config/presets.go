package config

import "sort"

var Presets = map[string]*Config{
	"powers": {
		Data:   DefaultData,
		Target: 256,
	},
	"single": {
		Data:   []int{5},
		Target: 5,
	},
	"gap": {
		Data:   []int{1, 3, 5, 7},
		Target: 4,
	},
	"unsorted": {
		Data:   []int{64, 8, 1024, 2, 256, 16, 4, 512, 32, 128},
		Target: 512,
	},
	"duplicates": {
		Data:   []int{7, 3, 3, 9, 7, 1, 9, 3},
		Target: 7,
	},
	"below": {
		Data:   []int{10, 20, 30, 40, 50},
		Target: 1,
	},
	"above": {
		Data:   []int{10, 20, 30, 40, 50},
		Target: 99,
	},
}

// GetPreset returns a copy of the named preset filled with default display
// settings, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Data = append([]int(nil), p.Data...)
	cfg.Target = p.Target
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
