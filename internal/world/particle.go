package world

import (
	"fmt"
	"image/color"
	"math"
)

// ParticleDamping is applied to particle velocity every tick.
const ParticleDamping = 0.98

// Particle is a purely cosmetic spark. Particles are never referenced,
// so they live in a plain slice rather than an entity store.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
}

// Palettes.
var (
	ExplosionColors       = mustPalette("#00ffff", "#ff00ff", "#ffffff", "#ffff00")
	DamageExplosionColors = mustPalette("#ff0000", "#ff6600", "#ffff00", "#ff00ff", "#00ffff", "#ffffff")
	MegaExplosionColors   = mustPalette("#ff0000", "#ff6600", "#ffff00", "#ff00ff", "#00ffff", "#ffffff", "#00ff00", "#ff0066", "#6600ff", "#ff3300")
	MissileColors         = mustPalette("#ff6600", "#ff3300", "#ffaa00", "#ff0000", "#ffffff", "#ffff00")
	SparkColors           = mustPalette("#ffff00", "#ffffff", "#00ffff")
	FlashColors           = mustPalette("#ff6600", "#ff0000", "#ffff00")

	colorOrange = MustHex("#ff6600")
	colorYellow = MustHex("#ffff00")
	colorWhite  = MustHex("#ffffff")
)

// ParseHex parses "#rrggbb".
func ParseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustPalette(hex ...string) []color.RGBA {
	out := make([]color.RGBA, len(hex))
	for i, h := range hex {
		out[i] = MustHex(h)
	}
	return out
}

// ==================== emitters ====================

func (s *State) emit(x, y, angle, speed float64, life int, c color.RGBA) {
	s.Particles = append(s.Particles, Particle{
		X: x, Y: y,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
		Life: life, MaxLife: life,
		Color: c,
	})
}

func (s *State) pick(p []color.RGBA) color.RGBA {
	return p[s.FXRand.Intn(len(p))]
}

// ring emits n particles evenly spaced over turns full circles.
func (s *State) ring(x, y float64, n int, turns float64, speed func(i int) float64, life int, col func() color.RGBA) {
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * turns * float64(i) / float64(n)
		s.emit(x, y, angle, speed(i), life, col())
	}
}

// scatter emits n particles in random directions.
func (s *State) scatter(x, y float64, n int, minSpeed, spread float64, life int, col func() color.RGBA) {
	for i := 0; i < n; i++ {
		angle := s.FXRand.Float64() * math.Pi * 2
		s.emit(x, y, angle, minSpeed+s.FXRand.Float64()*spread, life, col())
	}
}

func (s *State) jitter(base, spread float64) func(int) float64 {
	return func(int) float64 { return base + s.FXRand.Float64()*spread }
}

func (s *State) from(p []color.RGBA) func() color.RGBA {
	return func() color.RGBA { return s.pick(p) }
}

// Explosion is the basic hit burst.
func (s *State) Explosion(x, y float64) {
	for i := 0; i < 25; i++ {
		s.Particles = append(s.Particles, Particle{
			X: x, Y: y,
			VX:   (s.FXRand.Float64() - 0.5) * 20,
			VY:   (s.FXRand.Float64() - 0.5) * 20,
			Life: 50, MaxLife: 50,
			Color: s.pick(ExplosionColors),
		})
	}
}

// DamageExplosion marks the ship taking a hit.
func (s *State) DamageExplosion(x, y float64) {
	s.ring(x, y, 40, 1, s.jitter(15, 10), 60, s.from(DamageExplosionColors))
}

// SpectacularExplosion is the mini-boss death burst.
func (s *State) SpectacularExplosion(x, y float64) {
	pal := MegaExplosionColors[:7]
	s.ring(x, y, 80, 1, s.jitter(20, 15), 80, s.from(pal))
	s.scatter(x, y, 40, 10, 8, 70, s.from(pal))
}

// MegaExplosion is the boss death burst.
func (s *State) MegaExplosion(x, y float64) {
	pal := MegaExplosionColors
	s.ring(x, y, 720, 1, s.jitter(30, 25), 120, s.from(pal))
	s.scatter(x, y, 360, 20, 15, 100, s.from(pal))
	s.scatter(x, y, 240, 10, 10, 130, s.from(pal))
	s.ring(x, y, 180, 4, func(i int) float64 { return 22 + float64(i)*0.4 }, 110, s.from(pal))
	for r := 0; r < 5; r++ {
		c := pal[r*2%len(pal)]
		speed := 25 + float64(r)*8
		s.ring(x, y, 120, 1, func(int) float64 { return speed }, 100+r*10, func() color.RGBA { return c })
	}
}

// UltimateExplosion marks the loss of a life.
func (s *State) UltimateExplosion(x, y float64) {
	pal := MegaExplosionColors[:9]
	s.ring(x, y, 240, 1, s.jitter(25, 20), 100, s.from(pal))
	s.scatter(x, y, 120, 15, 12, 90, s.from(pal))
	s.scatter(x, y, 80, 8, 6, 110, s.from(pal))
	s.ring(x, y, 60, 2, func(i int) float64 { return 18 + float64(i)*0.3 }, 85, s.from(pal))
}

// MissileExplosion is a missile impact on a mini-boss.
func (s *State) MissileExplosion(x, y float64) {
	s.ring(x, y, 60, 1, s.jitter(18, 12), 70, s.from(MissileColors))
	s.scatter(x, y, 40, 8, 8, 50, func() color.RGBA { return colorWhite })
}

// DeflectionSpark is a small flash where something glances off armour.
func (s *State) DeflectionSpark(x, y float64) {
	s.scatter(x, y, 8, 4, 4, 15, s.from(SparkColors))
}

// AreaRings is the area boomba shockwave.
func (s *State) AreaRings(x, y float64) {
	for r := 0; r < 5; r++ {
		speed := 15 + float64(r)*5
		s.ring(x, y, 40, 1, func(int) float64 { return speed }, 60, func() color.RGBA { return colorOrange })
	}
}

// ScreenFlash is the screen boomba flash.
func (s *State) ScreenFlash() {
	for i := 0; i < 200; i++ {
		s.Particles = append(s.Particles, Particle{
			X:    s.FXRand.Float64() * s.Width,
			Y:    s.FXRand.Float64() * s.Height,
			VX:   (s.FXRand.Float64() - 0.5) * 20,
			VY:   (s.FXRand.Float64() - 0.5) * 20,
			Life: 70, MaxLife: 70,
			Color: s.pick(FlashColors),
		})
	}
}

// ChargedBurst is the charged boomba release, scaled by power in [0,1].
func (s *State) ChargedBurst(power float64) {
	n := int(math.Ceil(100 * power))
	for i := 0; i < n; i++ {
		s.Particles = append(s.Particles, Particle{
			X:    s.Width / 2,
			Y:    s.Height / 2,
			VX:   (s.FXRand.Float64() - 0.5) * 30,
			VY:   (s.FXRand.Float64() - 0.5) * 30,
			Life: 80, MaxLife: 80,
			Color: colorYellow,
		})
	}
}

// StepParticles integrates, damps and compacts the particle slice in place.
func (s *State) StepParticles() {
	n := 0
	for i := range s.Particles {
		p := s.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.VX *= ParticleDamping
		p.VY *= ParticleDamping
		if p.Life > 0 {
			s.Particles[n] = p
			n++
		}
	}
	s.Particles = s.Particles[:n]
}
