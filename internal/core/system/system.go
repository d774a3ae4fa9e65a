package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: poll controls, steer ship, fire
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseSpawn                   // 2: stochastic + timer-driven spawns
	PhaseUpdate                  // 3: integrate motion, boss AI, missiles
	PhaseCollision               // 4: combat resolution, pickup collection
	PhaseEffects                 // 5: particle decay
	PhasePostUpdate              // 6: chapter timers
	PhaseCleanup                 // 7: cull out-of-bounds, compact stores
)

var phaseNames = [...]string{"input", "pre_update", "spawn", "update", "collision", "effects", "post_update", "cleanup"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// System is the interface every simulation system implements.
// Systems are tick-counted: Update is called exactly once per fixed tick.
type System interface {
	Phase() Phase
	Update()
}
