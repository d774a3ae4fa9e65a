package system

import (
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

// ParticleSystem decays particles. It also runs in gated sub-states so
// explosions keep animating during transitions.
// Phase 5 (Effects).
type ParticleSystem struct {
	world *world.State
}

func NewParticleSystem(ws *world.State) *ParticleSystem {
	return &ParticleSystem{world: ws}
}

func (s *ParticleSystem) Phase() coresys.Phase { return coresys.PhaseEffects }

func (s *ParticleSystem) Update() { s.world.StepParticles() }
