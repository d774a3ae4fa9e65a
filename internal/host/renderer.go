package host

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colBackground = color.RGBA{0x05, 0x02, 0x10, 0xff}
	colGrid       = color.RGBA{0x40, 0x00, 0x60, 0xff}
	colShip       = world.MustHex("#00ffff")
	colShield     = color.RGBA{0x00, 0x70, 0xaa, 0xaa}
	colBullet     = world.MustHex("#00ff00")
	colBounced    = world.MustHex("#ff6600")
	colEnemy      = world.MustHex("#ff00ff")
	colBlockdot   = world.MustHex("#ffff00")
	colTrench     = world.MustHex("#6600ff")
	colBlock      = world.MustHex("#ff3300")
	colHeart      = world.MustHex("#ff0066")
	colBoss       = world.MustHex("#ff0000")
	colBossBullet = world.MustHex("#ff6600")
	colMissile    = world.MustHex("#ffaa00")
	colHPBack     = color.RGBA{0x40, 0x40, 0x40, 0xff}
)

var pickupColors = map[world.PickupType]color.RGBA{
	world.PickupShield:    world.MustHex("#00aaff"),
	world.PickupWeapon:    world.MustHex("#00ff00"),
	world.PickupBoomba:    world.MustHex("#ff00ff"),
	world.PickupInvuln:    world.MustHex("#ffffff"),
	world.PickupExtraLife: world.MustHex("#ffff00"),
	world.PickupMissile:   world.MustHex("#ff6600"),
}

var pickupLetters = map[world.PickupType]string{
	world.PickupShield:    "S",
	world.PickupWeapon:    "W",
	world.PickupBoomba:    "B",
	world.PickupInvuln:    "I",
	world.PickupExtraLife: "+",
	world.PickupMissile:   "M",
}

// Renderer draws a read-only view of the world.
type Renderer struct {
	stars *starfield
}

func NewRenderer(w, h float64) *Renderer {
	return &Renderer{stars: newStarfield(150, w, h, 99)}
}

func (r *Renderer) Draw(dst *ebiten.Image, ws *world.State) {
	dst.Fill(colBackground)
	r.stars.step(ws.Width, ws.Height, ws.GameSpeed)
	r.stars.draw(dst)

	if ws.LaneChapter() {
		drawLanes(dst, ws)
	}
	drawTrench(dst, ws)
	drawPickups(dst, ws)
	drawEnemies(dst, ws)
	drawBullets(dst, ws)
	drawMiniBosses(dst, ws)
	drawBosses(dst, ws)
	drawHostileBullets(dst, ws)
	drawMissiles(dst, ws)
	if ws.RespawnTimer == 0 && !ws.GameOver {
		drawShip(dst, ws)
	}
	drawParticles(dst, ws)
	drawHUD(dst, ws.HUD(), ws)
}

// depthScale is the on-screen size factor of a lane entity.
func depthScale(m *world.Motion) float64 {
	if m.IsDrop() {
		return 1
	}
	return math.Max(m.Lane.Z, 0.05)
}

func drawLanes(dst *ebiten.Image, ws *world.State) {
	hx, hy := ws.Horizon()
	vector.StrokeLine(dst, 0, float32(hy), float32(ws.Width), float32(hy), 1, colGrid, false)
	for _, lane := range world.Lanes {
		x, y := ws.Project(lane*2, 1.2)
		vector.StrokeLine(dst, float32(hx), float32(hy), float32(x), float32(y), 1, colGrid, false)
	}
}

func drawTrench(dst *ebiten.Image, ws *world.State) {
	ws.Trench.Each(func(_ ecs.EntityID, b *world.TrenchBlock) {
		x, y := ws.Project(b.WorldLane, b.Z)
		c := colTrench
		w := 120 * world.FOVScale * b.Z
		h := 80 * b.Z
		if b.Single {
			c = colBlock
			w = 50 * world.FOVScale * b.Z
			h = w
		}
		vector.DrawFilledRect(dst, float32(x-w/2), float32(y-h), float32(w), float32(h), c, false)
	})
}

func drawEnemies(dst *ebiten.Image, ws *world.State) {
	ws.Enemies.Each(func(_ ecs.EntityID, e *world.Enemy) {
		x, y := ws.ScreenPos(&e.Motion)
		size := e.Size * depthScale(&e.Motion)
		if e.Blockdot {
			vector.DrawFilledRect(dst, float32(x-size/2), float32(y-size/2), float32(size), float32(size), colBlockdot, false)
			return
		}
		vector.StrokeCircle(dst, float32(x), float32(y), float32(size/2), 2, colEnemy, true)
	})
}

func drawPickups(dst *ebiten.Image, ws *world.State) {
	ws.Pickups.Each(func(_ ecs.EntityID, p *world.Pickup) {
		x, y := ws.ScreenPos(&p.Motion)
		size := p.Size
		if size == 0 {
			size = 25
		}
		size *= depthScale(&p.Motion)
		vector.StrokeCircle(dst, float32(x), float32(y), float32(size/2), 2, pickupColors[p.Type], true)
		ebitenutil.DebugPrintAt(dst, pickupLetters[p.Type], int(x)-3, int(y)-8)
	})
	ws.Hearts.Each(func(_ ecs.EntityID, h *world.Heart) {
		x, y := ws.ScreenPos(&h.Motion)
		size := h.Size
		if size == 0 {
			size = 20
		}
		size *= depthScale(&h.Motion)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size/2), colHeart, true)
	})
}

func drawBullets(dst *ebiten.Image, ws *world.State) {
	ws.Bullets.Each(func(_ ecs.EntityID, b *world.Bullet) {
		c := colBullet
		if b.Bounced() {
			c = colBounced
		}
		w := math.Max(b.Width, 3)
		// Tail points back along the velocity.
		tx, ty := b.X-b.VX*0.8, b.Y-b.VY*0.8
		vector.StrokeLine(dst, float32(b.X), float32(b.Y), float32(tx), float32(ty), float32(w), c, true)
	})
}

func drawMiniBosses(dst *ebiten.Image, ws *world.State) {
	ws.MiniBosses.Each(func(_ ecs.EntityID, mb *world.MiniBoss) {
		c1 := profileColor(mb.Profile.Color1, colEnemy)
		c2 := profileColor(mb.Profile.Color2, colBlockdot)
		vector.DrawFilledRect(dst, float32(mb.X-40), float32(mb.Y-25), 80, 50, c1, false)
		vector.StrokeRect(dst, float32(mb.X-40), float32(mb.Y-25), 80, 50, 3, c2, false)
		drawHPBar(dst, mb.X, mb.Y-40, 80, mb.HP, mb.MaxHP, c2)
		ebitenutil.DebugPrintAt(dst, mb.Profile.Name, int(mb.X)-40, int(mb.Y)-58)
	})
}

func drawBosses(dst *ebiten.Image, ws *world.State) {
	ws.Bosses.Each(func(_ ecs.EntityID, b *world.Boss) {
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), 60, colBoss, true)
		vector.StrokeCircle(dst, float32(b.X), float32(b.Y), 70, 3, colBlockdot, true)
		drawHPBar(dst, b.X, b.Y-85, 160, b.HP, b.MaxHP, colBoss)
	})
}

func drawHostileBullets(dst *ebiten.Image, ws *world.State) {
	ws.BossBullets.Each(func(_ ecs.EntityID, b *world.HostileBullet) {
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Size), colBossBullet, true)
	})
	ws.MiniBossBullets.Each(func(_ ecs.EntityID, b *world.HostileBullet) {
		x, y, s := float32(b.X), float32(b.Y), float32(b.Size)
		switch b.Type {
		case data.BulletCircle:
			vector.StrokeCircle(dst, x, y, s, 2, colEnemy, true)
		case data.BulletTriangle:
			vector.StrokeLine(dst, x, y+s, x-s, y-s, 2, colEnemy, true)
			vector.StrokeLine(dst, x-s, y-s, x+s, y-s, 2, colEnemy, true)
			vector.StrokeLine(dst, x+s, y-s, x, y+s, 2, colEnemy, true)
		default:
			vector.StrokeLine(dst, x, y-s*2, x, y+s*2, 3, colEnemy, true)
		}
	})
}

func drawMissiles(dst *ebiten.Image, ws *world.State) {
	ws.Missiles.Each(func(_ ecs.EntityID, m *world.Missile) {
		n := m.Trail.Len()
		for i := 1; i < n; i++ {
			a, b := m.Trail.At(i-1), m.Trail.At(i)
			c := fade(colMissile, float64(i)/float64(n))
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, c, true)
		}
		vector.DrawFilledCircle(dst, float32(m.X), float32(m.Y), 5, colMissile, true)
	})
}

func drawShip(dst *ebiten.Image, ws *world.State) {
	sh := &ws.Ship
	if sh.InvulnTimer > 0 && (sh.InvulnTimer/5)%2 == 0 {
		return
	}
	x, y := float32(sh.X), float32(sh.Y)
	tilt := float32(sh.Angle * 6)
	vector.StrokeLine(dst, x+tilt, y-30, x-25, y+20, 3, colShip, true)
	vector.StrokeLine(dst, x-25, y+20, x+25, y+20, 3, colShip, true)
	vector.StrokeLine(dst, x+25, y+20, x+tilt, y-30, 3, colShip, true)
	if sh.ShieldActive {
		vector.StrokeCircle(dst, x, y, 50, 3, colShield, true)
	}
	if sh.ChargingBoomba {
		r := float32(20 + float64(sh.BoombaCharge)/world.BoombaChargeMax*60)
		vector.StrokeCircle(dst, x, y, r, 2, colBlockdot, true)
	}
}

func drawParticles(dst *ebiten.Image, ws *world.State) {
	for _, p := range ws.Particles {
		c := p.Color
		if p.MaxLife > 0 {
			c = fade(c, float64(p.Life)/float64(p.MaxLife))
		}
		vector.DrawFilledRect(dst, float32(p.X-1.5), float32(p.Y-1.5), 3, 3, c, false)
	}
}

func drawHPBar(dst *ebiten.Image, cx, y, w float64, hp, maxHP int, c color.RGBA) {
	if maxHP <= 0 {
		return
	}
	frac := math.Max(0, math.Min(1, float64(hp)/float64(maxHP)))
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(y), float32(w), 5, colHPBack, false)
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(y), float32(w*frac), 5, c, false)
}

func drawHUD(dst *ebiten.Image, h world.HUD, ws *world.State) {
	lines := []string{
		fmt.Sprintf("SCORE %d", h.Score),
		fmt.Sprintf("LEVEL %d-%d %s", h.Level, h.Chapter, h.ChapterName),
		fmt.Sprintf("LIVES %d  HEALTH %d/%d", h.Lives, h.Health, world.MaxHealth),
		fmt.Sprintf("SHIELD %3.0f%%", h.Shield),
		fmt.Sprintf("WEAPON %s [%s]", h.WeaponName, strings.Join(h.Weapons, " ")),
		fmt.Sprintf("MISSILES %d", h.MissileAmmo),
		fmt.Sprintf("BOOMBAS %d %s", len(h.Boombas), nextBoomba(h.Boombas)),
	}
	if h.Charging {
		lines = append(lines, fmt.Sprintf("CHARGE %3.0f%%", h.BoombaCharge*100))
	}
	if h.Invuln > 0 {
		lines = append(lines, fmt.Sprintf("INVULNERABLE %ds", h.Invuln/world.TicksPerSecond))
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, 10, 10+i*16)
	}

	cx, cy := int(ws.Width/2), int(ws.Height/2)
	center := func(msg string, dy int) {
		ebitenutil.DebugPrintAt(dst, msg, cx-len(msg)*3, cy+dy)
	}
	switch h.State {
	case world.StateGameOver:
		center("GAME OVER", -20)
		center(fmt.Sprintf("FINAL SCORE %d", h.Score), 0)
		if h.DeathTimer == 0 {
			center("PRESS R TO RESTART", 20)
		}
	case world.StateRespawning:
		center(fmt.Sprintf("RESPAWNING... %d", h.RespawnTimer/world.TicksPerSecond+1), 0)
	case world.StateLevelTransition:
		center(fmt.Sprintf("LEVEL %d", h.Level), -10)
		center(h.ChapterName, 10)
	case world.StateBossDefeated:
		center("HARASSER DESTROYED", -10)
		center(fmt.Sprintf("+%d", h.BossScoreGained), 10)
	case world.StateChapterTransition:
		center(fmt.Sprintf("CHAPTER %d", h.Chapter), -10)
		center(h.ChapterName, 10)
	}
}

func nextBoomba(q []world.BoombaType) string {
	if len(q) == 0 {
		return ""
	}
	return "NEXT " + strings.ToUpper(string(q[0]))
}

func profileColor(hex string, def color.RGBA) color.RGBA {
	c, err := world.ParseHex(hex)
	if err != nil {
		return def
	}
	return c
}

// fade scales an opaque colour to alpha k, keeping it premultiplied.
func fade(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{uint8(float64(c.R) * k), uint8(float64(c.G) * k), uint8(float64(c.B) * k), uint8(float64(c.A) * k)}
}
