package sim

import "time"

// TickDuration is one fixed simulation step.
const TickDuration = time.Second / 60

// Loop converts variable frame times into fixed ticks. The accumulator is
// capped so a long stall runs at most maxCatchUp ticks on the next frame.
type Loop struct {
	sim        *Simulation
	maxCatchUp int
	acc        time.Duration
	last       time.Time
	started    bool
}

func NewLoop(s *Simulation, maxCatchUp int) *Loop {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Loop{sim: s, maxCatchUp: maxCatchUp}
}

// Frame runs the ticks owed since the previous frame, then the scheduled
// effects that have come due. It returns the number of ticks run.
// The first frame only anchors the clock.
func (l *Loop) Frame(now time.Time) int {
	if !l.started {
		l.started = true
		l.last = now
		l.sim.scheduler.Drain()
		return 0
	}
	elapsed := now.Sub(l.last)
	l.last = now
	if elapsed > 0 {
		l.acc += elapsed
	}
	if limit := time.Duration(l.maxCatchUp) * TickDuration; l.acc > limit {
		l.acc = limit
	}

	n := 0
	for l.acc >= TickDuration {
		l.sim.Step()
		l.acc -= TickDuration
		n++
	}
	l.sim.scheduler.Drain()
	return n
}
