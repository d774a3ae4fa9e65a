package data

import _ "embed"

//go:embed defaults/miniboss_list.yaml
var defaultMiniBossYAML []byte

//go:embed defaults/weapon_list.yaml
var defaultWeaponYAML []byte
