package audio

import (
	"math"

	"github.com/apophis/game/internal/core/event"
	"github.com/gopxl/beep"
)

// releaseFloor is the gain a tone decays to by the end of its duration.
const releaseFloor = 0.01

// oscillator is a single decaying tone. The gain falls exponentially from
// the start volume to releaseFloor over the tone length.
type oscillator struct {
	wave     event.Waveform
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	gain     float64
	decay    float64 // per-sample gain multiplier
}

func newOscillator(e event.SoundTriggered, rate beep.SampleRate) *oscillator {
	total := rate.N(secondsToDuration(e.Duration))
	o := &oscillator{
		wave:  e.Wave,
		freq:  e.Freq,
		rate:  rate,
		total: total,
		gain:  math.Min(math.Max(e.Volume, 0), 1),
		decay: 1,
	}
	if o.gain > releaseFloor && total > 0 {
		o.decay = math.Pow(releaseFloor/o.gain, 1/float64(total))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		val := o.gain * o.sample()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.gain *= o.decay
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case event.WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case event.WaveSawtooth:
		return 2 * (o.phase - 0.5)
	case event.WaveTriangle:
		return 1 - 4*math.Abs(o.phase-0.5)
	}
	return math.Sin(2 * math.Pi * o.phase)
}

func (o *oscillator) Err() error { return nil }
