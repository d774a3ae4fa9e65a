package system

import (
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"go.uber.org/zap"
)

// EventDispatchSystem swaps the bus buffers and delivers last tick's events.
// It runs in gated ticks too, so sounds and log lines queued on the tick
// that entered a transition are not held back.
// Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

// NewEventDispatchSystem also subscribes the gameplay log handlers.
func NewEventDispatchSystem(bus *event.Bus, log *zap.Logger) *EventDispatchSystem {
	subscribeLogging(bus, log)
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update() {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

func subscribeLogging(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(e event.EntityKilled) {
		log.Debug("kill",
			zap.Stringer("kind", e.Kind),
			zap.Int("score", e.Score),
			zap.Float64("x", e.X),
			zap.Float64("y", e.Y))
	})
	event.Subscribe(bus, func(e event.PlayerDied) {
		if e.GameOver {
			log.Info("game over")
			return
		}
		log.Info("player died", zap.Int("lives_left", e.LivesLeft))
	})
	event.Subscribe(bus, func(e event.BossDefeated) {
		log.Info("boss defeated", zap.Int("level", e.Level))
	})
	event.Subscribe(bus, func(e event.ChapterAdvanced) {
		log.Info("chapter advanced", zap.Int("level", e.Level), zap.Int("chapter", e.Chapter))
	})
	event.Subscribe(bus, func(e event.LevelCompleted) {
		log.Info("level complete", zap.Int("level", e.Level))
	})
	event.Subscribe(bus, func(e event.PickupCollected) {
		log.Debug("pickup collected", zap.String("type", e.Type))
	})
}
