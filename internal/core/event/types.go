package event

import "github.com/apophis/game/internal/core/ecs"

// Waveform names a synthesizer oscillator shape.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// SoundTriggered asks the audio boundary to play a single tone.
// Duration is in seconds.
type SoundTriggered struct {
	Freq     float64
	Wave     Waveform
	Duration float64
	Volume   float64
}

// KillKind classifies destroyed hostiles.
type KillKind int

const (
	KillEnemy KillKind = iota
	KillBlockdot
	KillObstacle
	KillMiniBoss
	KillBoss
)

func (k KillKind) String() string {
	switch k {
	case KillEnemy:
		return "enemy"
	case KillBlockdot:
		return "blockdot"
	case KillObstacle:
		return "obstacle"
	case KillMiniBoss:
		return "miniboss"
	case KillBoss:
		return "boss"
	}
	return "unknown"
}

type EntityKilled struct {
	Entity ecs.EntityID
	Kind   KillKind
	X, Y   float64
	Score  int
}

type PlayerDied struct {
	LivesLeft int
	GameOver  bool
}

type BossDefeated struct {
	X, Y  float64
	Level int
}

type ChapterAdvanced struct {
	Level   int
	Chapter int
}

type LevelCompleted struct {
	Level int // the level just entered
}

type PickupCollected struct {
	Type string
}
