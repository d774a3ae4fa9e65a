package world

// HUD is the scalar snapshot the renderer draws each frame.
type HUD struct {
	Score       int
	Level       int
	Chapter     int
	ChapterName string
	Lives       int
	Health      int
	Shield      float64
	ShieldOn    bool
	Invuln      int

	WeaponName string
	WeaponIcon string
	Weapons    []string // icons of owned weapons
	WeaponSel  int

	Boombas      []BoombaType
	Charging     bool
	BoombaCharge float64 // 0..1

	MissileAmmo     int
	MissileCooldown int

	State                  SubState
	DeathTimer             int
	RespawnTimer           int
	BossDefeatedTimer      int
	LevelTransitionTimer   int
	ChapterTransitionTimer int
	BossScoreGained        int

	BossHP, BossMaxHP int
}

// HUD builds the snapshot. Slices are copies.
func (s *State) HUD() HUD {
	h := HUD{
		Score:                  s.Score,
		Level:                  s.Level,
		Chapter:                s.Chapter,
		ChapterName:            ChapterName(s.Chapter),
		Lives:                  s.Ship.Lives,
		Health:                 s.Ship.Health,
		Shield:                 s.Ship.Shield,
		ShieldOn:               s.Ship.ShieldActive,
		Invuln:                 s.Ship.InvulnTimer,
		WeaponSel:              s.Ship.WeaponIndex,
		Boombas:                append([]BoombaType(nil), s.Ship.Boombas...),
		Charging:               s.Ship.ChargingBoomba,
		BoombaCharge:           float64(s.Ship.BoombaCharge) / BoombaChargeMax,
		MissileAmmo:            s.Ship.MissileAmmo,
		MissileCooldown:        s.Ship.MissileCooldown,
		State:                  s.SubState(),
		DeathTimer:             s.DeathTimer,
		RespawnTimer:           s.RespawnTimer,
		BossDefeatedTimer:      s.BossDefeatedTimer,
		LevelTransitionTimer:   s.LevelTransitionTimer,
		ChapterTransitionTimer: s.ChapterTransitionTimer,
		BossScoreGained:        s.BossScoreGained,
	}
	for _, id := range s.Ship.Weapons {
		if w := s.Weapons.Get(id); w != nil {
			h.Weapons = append(h.Weapons, w.Icon)
		}
	}
	if w := s.Weapons.Get(s.Ship.CurrentWeapon()); w != nil {
		h.WeaponName = w.Name
		h.WeaponIcon = w.Icon
	}
	if _, b, ok := s.Bosses.First(); ok {
		h.BossHP, h.BossMaxHP = b.HP, b.MaxHP
	}
	return h
}
