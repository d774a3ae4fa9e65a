package system

// Controls is the input surface polled once per tick. Device multiplexing
// (keyboard, gamepad, touch) happens behind it.
type Controls interface {
	MovementAxis() float64 // [-1, 1]
	Firing() bool
	Shielding() bool
	BoombaHeld() bool
	MissileRequested() bool
	// WeaponNextPressed and WeaponPrevPressed are edge signals: true for
	// exactly one tick per physical press.
	WeaponNextPressed() bool
	WeaponPrevPressed() bool
	RestartRequested() bool
}
