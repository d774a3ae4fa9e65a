package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// WeaponKind selects the bullet pattern a weapon fires.
type WeaponKind string

const (
	WeaponPlain   WeaponKind = "plain"
	WeaponSine    WeaponKind = "sine"
	WeaponScatter WeaponKind = "scatter"
	WeaponLaser   WeaponKind = "laser"
)

// Sound is a single synthesized tone.
type Sound struct {
	Freq     float64 `yaml:"freq"`
	Wave     string  `yaml:"wave"`
	Duration float64 `yaml:"duration"` // seconds
	Volume   float64 `yaml:"volume"`
}

// Weapon describes one entry of the player's weapon table.
type Weapon struct {
	ID        int        `yaml:"id"`
	Name      string     `yaml:"name"`
	Icon      string     `yaml:"icon"`
	Kind      WeaponKind `yaml:"kind"`
	DropSpeed float64    `yaml:"drop_speed"` // chapters 1/4
	LaneSpeed float64    `yaml:"lane_speed"` // chapters 2/3
	Count     int        `yaml:"count"`
	Spacing   float64    `yaml:"spacing"`
	Drift     float64    `yaml:"drift"`
	Spread    float64    `yaml:"spread"`
	Width     float64    `yaml:"width"`
	Sound     Sound      `yaml:"sound"`
}

type weaponListFile struct {
	Weapons []Weapon `yaml:"weapons"`
}

// WeaponTable holds weapons indexed by id.
type WeaponTable struct {
	weapons map[int]*Weapon
	ids     []int
}

// Get returns a weapon by id, or nil if not found.
func (t *WeaponTable) Get(id int) *Weapon {
	return t.weapons[id]
}

// IDs returns all weapon ids in ascending order.
func (t *WeaponTable) IDs() []int {
	return t.ids
}

// Count returns the number of weapons.
func (t *WeaponTable) Count() int {
	return len(t.weapons)
}

// LoadWeaponTable loads the weapon table from a YAML file.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapon_list: %w", err)
	}
	return parseWeaponTable(raw)
}

// DefaultWeaponTable returns the built-in weapon table.
func DefaultWeaponTable() *WeaponTable {
	t, err := parseWeaponTable(defaultWeaponYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded weapon_list: %v", err))
	}
	return t
}

func parseWeaponTable(raw []byte) (*WeaponTable, error) {
	var f weaponListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse weapon_list: %w", err)
	}
	t := &WeaponTable{weapons: make(map[int]*Weapon, len(f.Weapons))}
	for i := range f.Weapons {
		w := &f.Weapons[i]
		if _, dup := t.weapons[w.ID]; dup {
			return nil, fmt.Errorf("weapon_list: duplicate id %d", w.ID)
		}
		if w.Count < 1 {
			w.Count = 1
		}
		t.weapons[w.ID] = w
		t.ids = append(t.ids, w.ID)
	}
	if _, ok := t.weapons[0]; !ok {
		return nil, fmt.Errorf("weapon_list: weapon 0 (starting weapon) missing")
	}
	sort.Ints(t.ids)
	return t, nil
}
