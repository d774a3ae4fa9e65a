package sim

import (
	"fmt"
	"time"

	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/system"
	"github.com/apophis/game/internal/world"
	"go.uber.org/zap"
)

// Boss death fireworks, played in wall-clock time after the mega burst.
const (
	bossBurstCount  = 15
	bossBurstGap    = 50 * time.Millisecond
	bossBurstSpread = 150.0
)

// Options wires a Simulation.
type Options struct {
	Controls   system.Controls  // nil = no input
	Difficulty world.Difficulty // nil = world.DefaultDifficulty
	Clock      func() time.Time // nil = time.Now
	Log        *zap.Logger      // nil = no logging
}

// Simulation owns the system pipeline for one world. Step is the only
// entry point that mutates the world.
type Simulation struct {
	world       *world.State
	runner      *coresys.Runner
	progression *system.ProgressionSystem
	controls    system.Controls
	scheduler   *Scheduler
	log         *zap.Logger
	ticks       uint64
}

func New(ws *world.State, opts Options) *Simulation {
	if opts.Controls == nil {
		opts.Controls = &ControlState{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	s := &Simulation{
		world:     ws,
		runner:    coresys.NewRunner(),
		controls:  opts.Controls,
		scheduler: NewScheduler(opts.Clock),
		log:       opts.Log,
	}
	s.progression = system.NewProgressionSystem(ws, opts.Log)

	// Registration order matters inside a phase.
	s.runner.Register(system.NewPlayerSystem(ws, opts.Controls))
	s.runner.Register(system.NewEventDispatchSystem(ws.Bus, opts.Log))
	s.runner.Register(system.NewSpawnSystem(ws, opts.Difficulty, opts.Log))
	s.runner.Register(system.NewBossSystem(ws))
	s.runner.Register(system.NewMotionSystem(ws))
	s.runner.Register(system.NewMissileSystem(ws))
	s.runner.Register(system.NewMiniBossSystem(ws))
	s.runner.Register(system.NewCombatSystem(ws))
	s.runner.Register(system.NewPickupSystem(ws))
	s.runner.Register(system.NewParticleSystem(ws))
	s.runner.Register(s.progression)
	s.runner.Register(system.NewCleanupSystem(ws))

	event.Subscribe(ws.Bus, s.scheduleBossFireworks)
	return s
}

func (s *Simulation) World() *world.State   { return s.world }
func (s *Simulation) Scheduler() *Scheduler { return s.scheduler }
func (s *Simulation) Ticks() uint64         { return s.ticks }
func (s *Simulation) State() world.SubState { return s.progression.State() }

// Step advances the world by one fixed tick. A gated sub-state runs only
// event delivery, particles and cleanup. A panic inside the pipeline ends
// the run instead of the process.
func (s *Simulation) Step() {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tick panic recovered",
				zap.Uint64("tick", s.ticks),
				zap.String("panic", fmt.Sprint(r)),
				zap.Stack("stack"))
			ws := s.world
			ws.GameOver = true
			ws.Ship.Lives = 0
			ws.DeathTimer = world.DeathTicks
		}
	}()

	s.ticks++
	if s.progression.Gate(s.controls.RestartRequested()) {
		s.runner.TickPhases(coresys.PhasePreUpdate, coresys.PhaseEffects, coresys.PhaseCleanup)
		return
	}
	s.runner.Tick()
}

// scheduleBossFireworks queues the delayed spectacular bursts around the
// boss wreck.
func (s *Simulation) scheduleBossFireworks(e event.BossDefeated) {
	ws := s.world
	for i := 0; i < bossBurstCount; i++ {
		s.scheduler.After(time.Duration(i)*bossBurstGap, func() {
			x := e.X + (ws.FXRand.Float64()-0.5)*bossBurstSpread
			y := e.Y + (ws.FXRand.Float64()-0.5)*bossBurstSpread
			ws.SpectacularExplosion(x, y)
		})
	}
}
