package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }
func (r recorder) Update()      { *r.log = append(*r.log, r.name) }

func TestRunnerOrdersByPhaseKeepingRegistration(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"cleanup", PhaseCleanup, &log})
	r.Register(recorder{"motion", PhaseUpdate, &log})
	r.Register(recorder{"input", PhaseInput, &log})
	r.Register(recorder{"boss", PhaseUpdate, &log})
	r.Register(recorder{"missile", PhaseUpdate, &log})

	r.Tick()
	assert.Equal(t, []string{"input", "motion", "boss", "missile", "cleanup"}, log)
}

func TestRunnerTickPhases(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"spawn", PhaseSpawn, &log})
	r.Register(recorder{"particles", PhaseEffects, &log})
	r.Register(recorder{"events", PhasePreUpdate, &log})
	r.Register(recorder{"cleanup", PhaseCleanup, &log})

	r.TickPhases(PhasePreUpdate, PhaseEffects, PhaseCleanup)
	assert.Equal(t, []string{"events", "particles", "cleanup"}, log)
	assert.Equal(t, 4, r.Len())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "collision", PhaseCollision.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
