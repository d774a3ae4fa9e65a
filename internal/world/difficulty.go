package world

import "math"

// DifficultyInput is what the difficulty curve may depend on.
type DifficultyInput struct {
	Level     int
	Chapter   int
	GameSpeed float64
	Time      int
}

// SpawnChances are per-tick Bernoulli probabilities.
type SpawnChances struct {
	Enemy    float64
	Blockdot float64
	Obstacle float64 // chapter 2 single blocks
	Shield   float64
	Heart    float64
	Invuln   float64
	MiniBoss float64
}

// Difficulty computes the deterministic difficulty curve.
type Difficulty interface {
	SpawnChances(in DifficultyInput) SpawnChances
	// MiniBossHP returns the hit points for a mini-boss given a uniform roll in [0,1).
	MiniBossHP(level int, roll float64) int
	BossHP(level int) int
}

// DefaultDifficulty is the built-in curve. The Lua engine falls back to it.
type DefaultDifficulty struct{}

func (DefaultDifficulty) SpawnChances(in DifficultyInput) SpawnChances {
	return SpawnChances{
		Enemy:    0.02 + in.GameSpeed*0.1 + float64(in.Level)*0.005,
		Blockdot: 0.005 + float64(in.Level)*0.001,
		Obstacle: 0.01,
		Shield:   0.008,
		Heart:    0.003,
		Invuln:   0.001,
		MiniBoss: 0.003,
	}
}

// MiniBossHP is 12 at level 2, +3 per level, with +/-20% variance.
func (DefaultDifficulty) MiniBossHP(level int, roll float64) int {
	base := 12 + float64(level-2)*3
	variance := base * 0.2
	return int(math.Floor(base + roll*variance*2 - variance))
}

func (DefaultDifficulty) BossHP(level int) int {
	return 40 + level*15
}
