package host

import (
	"github.com/apophis/game/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadZone = 0.2

// Input polls keyboard and gamepads once per frame into a latch the
// simulation reads as its Controls.
type Input struct {
	latch *sim.Latch
	pads  []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{latch: &sim.Latch{}}
}

// Controls is the value handed to the simulation.
func (in *Input) Controls() *sim.Latch { return in.latch }

// QuitRequested reports an Escape press this frame.
func (in *Input) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (in *Input) Poll() {
	axis := 0.0
	if anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		axis--
	}
	if anyPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		axis++
	}
	fire := anyPressed(ebiten.KeySpace, ebiten.KeyZ)
	shield := anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyS)
	boomba := anyPressed(ebiten.KeyB, ebiten.KeyX)

	press := func(b sim.Button, keys ...ebiten.Key) {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.latch.Press(b)
				return
			}
		}
	}
	press(sim.ButtonWeaponNext, ebiten.KeyE, ebiten.KeyPeriod)
	press(sim.ButtonWeaponPrev, ebiten.KeyQ, ebiten.KeyComma)
	press(sim.ButtonMissile, ebiten.KeyM, ebiten.KeyC)
	press(sim.ButtonRestart, ebiten.KeyR, ebiten.KeyEnter)

	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for _, id := range in.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); v > stickDeadZone || v < -stickDeadZone {
			axis += v
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			axis--
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			axis++
		}
		fire = fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		shield = shield || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		boomba = boomba || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)

		padPress := func(b sim.Button, btn ebiten.StandardGamepadButton) {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				in.latch.Press(b)
			}
		}
		padPress(sim.ButtonWeaponNext, ebiten.StandardGamepadButtonFrontTopRight)
		padPress(sim.ButtonWeaponPrev, ebiten.StandardGamepadButtonFrontTopLeft)
		padPress(sim.ButtonMissile, ebiten.StandardGamepadButtonRightTop)
		padPress(sim.ButtonRestart, ebiten.StandardGamepadButtonCenterRight)
	}

	in.latch.SetHeld(axis, fire, shield, boomba)
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
