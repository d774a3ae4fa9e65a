package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BulletType selects how a mini-boss bullet looks and moves.
type BulletType string

const (
	BulletLine     BulletType = "line"
	BulletCircle   BulletType = "circle"
	BulletTriangle BulletType = "triangle"
)

// MiniBossProfile is one level-indexed mini-boss configuration.
type MiniBossProfile struct {
	Name       string     `yaml:"name"`
	FireRate   int        `yaml:"fire_rate"`
	ChaosRate  float64    `yaml:"chaos_rate"`
	Defense    float64    `yaml:"defense"`
	Color1     string     `yaml:"color1"`
	Color2     string     `yaml:"color2"`
	BulletType BulletType `yaml:"bullet_type"`
}

type miniBossListFile struct {
	MiniBosses []MiniBossProfile `yaml:"minibosses"`
}

// MiniBossTable holds mini-boss profiles in level order.
type MiniBossTable struct {
	profiles []MiniBossProfile
}

// ForLevel returns the profile for a level. Level 2 maps to the first entry;
// the index saturates at the last entry.
func (t *MiniBossTable) ForLevel(level int) MiniBossProfile {
	idx := level - 2
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.profiles)-1 {
		idx = len(t.profiles) - 1
	}
	return t.profiles[idx]
}

// Count returns the number of profiles.
func (t *MiniBossTable) Count() int {
	return len(t.profiles)
}

// LoadMiniBossTable loads mini-boss profiles from a YAML file.
func LoadMiniBossTable(path string) (*MiniBossTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read miniboss_list: %w", err)
	}
	return parseMiniBossTable(raw)
}

// DefaultMiniBossTable returns the built-in profiles.
func DefaultMiniBossTable() *MiniBossTable {
	t, err := parseMiniBossTable(defaultMiniBossYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded miniboss_list: %v", err))
	}
	return t
}

func parseMiniBossTable(raw []byte) (*MiniBossTable, error) {
	var f miniBossListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse miniboss_list: %w", err)
	}
	if len(f.MiniBosses) == 0 {
		return nil, fmt.Errorf("parse miniboss_list: no profiles")
	}
	for i, p := range f.MiniBosses {
		if p.FireRate <= 0 {
			return nil, fmt.Errorf("miniboss_list[%d] %q: fire_rate must be > 0", i, p.Name)
		}
		switch p.BulletType {
		case BulletLine, BulletCircle, BulletTriangle:
		default:
			return nil, fmt.Errorf("miniboss_list[%d] %q: unknown bullet_type %q", i, p.Name, p.BulletType)
		}
	}
	return &MiniBossTable{profiles: f.MiniBosses}, nil
}
