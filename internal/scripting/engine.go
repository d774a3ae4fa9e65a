package scripting

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/apophis/game/internal/world"
)

//go:embed defaults/difficulty.lua
var defaultDifficulty string

// Engine wraps a single gopher-lua VM for the difficulty curve.
// Single-goroutine access only (game loop).
// Every call falls back to world.DefaultDifficulty when the script fails.
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	fallback world.DefaultDifficulty
}

// NewEngine creates a Lua engine with the built-in difficulty script, then
// loads every script under scriptsDir/core on top of it. A missing directory
// is not an error.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	if err := vm.DoString(defaultDifficulty); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load built-in difficulty script: %w", err)
	}

	if scriptsDir != "" {
		corePath := filepath.Join(scriptsDir, "core")
		if err := e.loadDir(corePath); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load core scripts: %w", err)
		}
	}

	return e, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// call invokes a global Lua function with a single context table and
// returns its single result.
func (e *Engine) call(name string, ctx *lua.LTable) (lua.LValue, bool) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		e.log.Error("lua function not found", zap.String("func", name))
		return lua.LNil, false
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return lua.LNil, false
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, true
}

// SpawnChances calls the Lua spawn_chances function.
func (e *Engine) SpawnChances(in world.DifficultyInput) world.SpawnChances {
	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(in.Level))
	t.RawSetString("chapter", lua.LNumber(in.Chapter))
	t.RawSetString("game_speed", lua.LNumber(in.GameSpeed))
	t.RawSetString("time", lua.LNumber(in.Time))

	fb := e.fallback.SpawnChances(in)
	result, ok := e.call("spawn_chances", t)
	if !ok {
		return fb
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua spawn_chances returned non-table")
		return fb
	}

	// Missing keys keep the built-in value.
	field := func(key string, def float64) float64 {
		v := rt.RawGetString(key)
		if n, ok := v.(lua.LNumber); ok {
			return float64(n)
		}
		return def
	}
	return world.SpawnChances{
		Enemy:    field("enemy", fb.Enemy),
		Blockdot: field("blockdot", fb.Blockdot),
		Obstacle: field("obstacle", fb.Obstacle),
		Shield:   field("shield", fb.Shield),
		Heart:    field("heart", fb.Heart),
		Invuln:   field("invuln", fb.Invuln),
		MiniBoss: field("miniboss", fb.MiniBoss),
	}
}

// MiniBossHP calls the Lua miniboss_hp function.
func (e *Engine) MiniBossHP(level int, roll float64) int {
	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(level))
	t.RawSetString("roll", lua.LNumber(roll))
	return e.intResult("miniboss_hp", t, e.fallback.MiniBossHP(level, roll))
}

// BossHP calls the Lua boss_hp function.
func (e *Engine) BossHP(level int) int {
	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(level))
	return e.intResult("boss_hp", t, e.fallback.BossHP(level))
}

func (e *Engine) intResult(name string, ctx *lua.LTable, def int) int {
	result, ok := e.call(name, ctx)
	if !ok {
		return def
	}
	n, ok := result.(lua.LNumber)
	if !ok || n < 1 {
		e.log.Error("lua returned invalid hp", zap.String("func", name), zap.String("value", result.String()))
		return def
	}
	return int(n)
}
