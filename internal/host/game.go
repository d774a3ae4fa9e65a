package host

import (
	"fmt"
	"time"

	"github.com/apophis/game/internal/sim"
	"github.com/apophis/game/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game adapts the simulation to ebiten. Update polls input and runs the
// fixed-step loop; Draw renders whatever state the last tick left.
type Game struct {
	sim      *sim.Simulation
	loop     *sim.Loop
	input    *Input
	renderer *Renderer
	log      *zap.Logger
	now      func() time.Time
}

func NewGame(s *sim.Simulation, loop *sim.Loop, input *Input, log *zap.Logger) *Game {
	ws := s.World()
	return &Game{
		sim:      s,
		loop:     loop,
		input:    input,
		renderer: NewRenderer(ws.Width, ws.Height),
		log:      log,
		now:      time.Now,
	}
}

func (g *Game) Update() error {
	if g.input.QuitRequested() {
		return ebiten.Termination
	}
	g.input.Poll()
	g.loop.Frame(g.now())
	return nil
}

// Draw never lets a rendering bug take the process down.
func (g *Game) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("render panic recovered",
				zap.Uint64("tick", g.sim.Ticks()),
				zap.String("panic", fmt.Sprint(r)),
				zap.Stack("stack"))
		}
	}()
	g.renderer.Draw(screen, g.sim.World())
}

// Layout keeps the logical play field fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ws := g.sim.World()
	return int(ws.Width), int(ws.Height)
}

// Run opens the window and blocks until it closes.
func Run(g *Game, title string) error {
	ws := g.sim.World()
	ebiten.SetWindowSize(int(ws.Width), int(ws.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(world.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
