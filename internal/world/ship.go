package world

// Ship is the player ship. It is never destroyed, only respawned.
type Ship struct {
	X, Y  float64
	Angle float64 // steering angle; drives lateral speed

	Health int
	Lives  int

	Shield       float64
	ShieldActive bool

	InvulnTimer int

	Weapons     []int // owned weapon ids, in pickup order
	WeaponIndex int

	Boombas        []BoombaType // FIFO, head is the next to launch
	ChargingBoomba bool
	BoombaCharge   int
	BoombaHeldPrev bool

	MissileAmmo     int
	MissileCooldown int
}

func newShip(lives int) Ship {
	return Ship{
		Health:      MaxHealth,
		Lives:       lives,
		Shield:      ShieldMax,
		Weapons:     []int{0},
		MissileAmmo: StartingMissileAmmo,
	}
}

// CurrentWeapon returns the id of the selected weapon.
func (s *Ship) CurrentWeapon() int {
	if len(s.Weapons) == 0 {
		return 0
	}
	return s.Weapons[s.WeaponIndex%len(s.Weapons)]
}

func (s *Ship) CycleWeapon(step int) {
	n := len(s.Weapons)
	if n == 0 {
		return
	}
	s.WeaponIndex = ((s.WeaponIndex+step)%n + n) % n
}

// AddWeapon grants a weapon if not already owned.
func (s *Ship) AddWeapon(id int) bool {
	for _, w := range s.Weapons {
		if w == id {
			return false
		}
	}
	s.Weapons = append(s.Weapons, id)
	return true
}

// QueueBoomba appends to the boomba queue unless it is full.
func (s *Ship) QueueBoomba(t BoombaType) bool {
	if len(s.Boombas) >= MaxBoombaQueue {
		return false
	}
	s.Boombas = append(s.Boombas, t)
	return true
}

// NextBoomba peeks at the head of the queue.
func (s *Ship) NextBoomba() (BoombaType, bool) {
	if len(s.Boombas) == 0 {
		return "", false
	}
	return s.Boombas[0], true
}

// PopBoomba removes the head of the queue.
func (s *Ship) PopBoomba() {
	if len(s.Boombas) > 0 {
		s.Boombas = s.Boombas[1:]
	}
}

func (s *Ship) AdjustHealth(d int) {
	s.Health = clampInt(s.Health+d, 0, MaxHealth)
}

func (s *Ship) AdjustShield(d float64) {
	s.Shield = clamp(s.Shield+d, 0, ShieldMax)
}

func (s *Ship) AdjustMissileAmmo(d int) {
	s.MissileAmmo = clampInt(s.MissileAmmo+d, 0, MaxMissileAmmo)
}

// Protected reports whether hostile contact is currently harmless.
func (s *Ship) Protected() bool {
	return s.ShieldActive || s.InvulnTimer > 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
