package system

import "sort"

// Runner executes systems in phase order each tick.
// Systems sharing a phase run in registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner) Tick() {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update()
	}
}

// TickPhase runs only the systems of the given phase.
// Used while a transition sub-state gates the rest of the pipeline.
func (r *Runner) TickPhase(phase Phase) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update()
		}
	}
}

// TickPhases runs the given phases, each in turn.
func (r *Runner) TickPhases(phases ...Phase) {
	for _, p := range phases {
		r.TickPhase(p)
	}
}

func (r *Runner) Len() int { return len(r.systems) }

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
