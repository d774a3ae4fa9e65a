package sim

import (
	"sort"
	"time"
)

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler runs callbacks after a wall-clock delay. It is single-threaded:
// tasks only run inside Drain, on the game loop goroutine.
type Scheduler struct {
	now   func() time.Time
	tasks []task
	seq   uint64
}

func NewScheduler(clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{now: clock}
}

// After queues fn to run once d has elapsed. Tasks with the same due time
// run in the order they were queued.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	t := task{due: s.now().Add(d), seq: s.seq, fn: fn}
	i := sort.Search(len(s.tasks), func(i int) bool { return s.tasks[i].due.After(t.due) })
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// Drain runs every task that is due and returns how many ran.
func (s *Scheduler) Drain() int {
	now := s.now()
	n := 0
	for len(s.tasks) > 0 && !s.tasks[0].due.After(now) {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		t.fn()
		n++
	}
	return n
}

func (s *Scheduler) Pending() int { return len(s.tasks) }

// Clear drops every queued task.
func (s *Scheduler) Clear() { s.tasks = nil }
