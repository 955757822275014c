package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets are named timing profiles. Only the boot and typewriter timings
// are taken from them.
var Presets = map[string]*Config{
	"classic": {
		Boot:      BootConfig{MessageInterval: 1500 * time.Millisecond, ProgressInterval: 50 * time.Millisecond, ProgressStep: 2},
		Typewrite: TypewriteConfig{CharDelay: 10 * time.Millisecond, LineDelay: 50 * time.Millisecond},
	},
	"fast": {
		Boot:      BootConfig{MessageInterval: 400 * time.Millisecond, ProgressInterval: 20 * time.Millisecond, ProgressStep: 5},
		Typewrite: TypewriteConfig{CharDelay: 2 * time.Millisecond, LineDelay: 10 * time.Millisecond},
	},
	"slow": {
		Boot:      BootConfig{MessageInterval: 2500 * time.Millisecond, ProgressInterval: 120 * time.Millisecond, ProgressStep: 1},
		Typewrite: TypewriteConfig{CharDelay: 35 * time.Millisecond, LineDelay: 180 * time.Millisecond},
	},
	"instant": {
		Boot:      BootConfig{MessageInterval: 100 * time.Millisecond, ProgressInterval: time.Millisecond, ProgressStep: 100},
		Typewrite: TypewriteConfig{CharDelay: time.Microsecond, LineDelay: time.Microsecond},
	},
}

func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

// ListPresets returns preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
