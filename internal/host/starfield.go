package host

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type star struct {
	x, y, speed, size float64
}

// starfield is render-only scenery with its own random source so it never
// touches simulation rolls.
type starfield struct {
	stars []star
	rng   *rand.Rand
}

func newStarfield(n int, w, h float64, seed int64) *starfield {
	sf := &starfield{rng: rand.New(rand.NewSource(seed))}
	for i := 0; i < n; i++ {
		sf.stars = append(sf.stars, star{
			x:     sf.rng.Float64() * w,
			y:     sf.rng.Float64() * h,
			speed: 0.5 + sf.rng.Float64()*2.5,
			size:  1 + sf.rng.Float64()*1.5,
		})
	}
	return sf
}

// step scrolls the stars; speed scales with the current game speed.
func (sf *starfield) step(w, h, gameSpeed float64) {
	k := 1 + gameSpeed*10
	for i := range sf.stars {
		s := &sf.stars[i]
		s.y += s.speed * k
		if s.y > h {
			s.y = 0
			s.x = sf.rng.Float64() * w
		}
	}
}

func (sf *starfield) draw(dst *ebiten.Image) {
	for _, s := range sf.stars {
		a := uint8(90 + 40*s.speed)
		vector.DrawFilledRect(dst, float32(s.x), float32(s.y), float32(s.size), float32(s.size), color.RGBA{a, a, a, 0xff}, false)
	}
}
