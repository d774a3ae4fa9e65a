package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/apophis/game/internal/audio"
	"github.com/apophis/game/internal/config"
	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/host"
	"github.com/apophis/game/internal/scripting"
	"github.com/apophis/game/internal/sim"
	"github.com/apophis/game/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config/apophis.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(title string) {
	fmt.Println()
	fmt.Println("\033[35;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Printf("\033[35;1m  │\033[0m %-41s \033[35;1m│\033[0m\n", title)
	fmt.Println("\033[35;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  \033[33m!\033[0m %s\n", msg)
}

// ── Boot ──────────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Game.Title)

	// 3. Data tables
	printSection("data")
	miniBosses, err := data.LoadMiniBossTable(cfg.Data.MiniBossList)
	if err != nil {
		return fmt.Errorf("load miniboss table: %w", err)
	}
	log.Debug("loaded table", zap.String("file", cfg.Data.MiniBossList))
	printStat("mini-boss profiles", miniBosses.Count())

	weapons, err := data.LoadWeaponTable(cfg.Data.WeaponList)
	if err != nil {
		return fmt.Errorf("load weapon table: %w", err)
	}
	log.Debug("loaded table", zap.String("file", cfg.Data.WeaponList))
	printStat("weapons", weapons.Count())

	// 4. Difficulty script
	lua, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer lua.Close()
	printOK("difficulty script loaded")
	fmt.Println()

	// 5. World and simulation
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ws := world.NewState(world.Options{
		Width:         float64(cfg.Game.Width),
		Height:        float64(cfg.Game.Height),
		StartingLives: cfg.Game.StartingLives,
		Rand:          rand.New(rand.NewSource(seed)),
		MiniBosses:    miniBosses,
		Weapons:       weapons,
	})
	input := host.NewInput()
	simulation := sim.New(ws, sim.Options{
		Controls:   input.Controls(),
		Difficulty: lua,
		Log:        log,
	})
	loop := sim.NewLoop(simulation, cfg.Loop.MaxCatchUpTicks)
	log.Info("simulation ready",
		zap.Int64("seed", seed),
		zap.Int("width", cfg.Game.Width),
		zap.Int("height", cfg.Game.Height))

	// 6. Audio
	printSection("audio")
	sink := startAudio(cfg.Audio, log)
	event.Subscribe(ws.Bus, sink.Play)
	fmt.Println()

	// 7. Window
	return host.Run(host.NewGame(simulation, loop, input, log), cfg.Game.Title)
}

// loadConfig reads APOPHIS_CONFIG or the default path. Only a missing
// default file falls back to built-in settings.
func loadConfig() (*config.Config, error) {
	path := defaultConfigPath
	if p := os.Getenv("APOPHIS_CONFIG"); p != "" {
		path = p
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// startAudio opens the speaker. Failing to do so is not fatal; the game
// runs silent.
func startAudio(cfg config.AudioConfig, log *zap.Logger) audio.Sink {
	if !cfg.Enabled {
		printWarn("audio disabled")
		return audio.Discard{}
	}
	synth := audio.NewSynth(cfg, log)
	if err := synth.Start(); err != nil {
		log.Warn("audio unavailable, running silent", zap.Error(err))
		printWarn("audio unavailable")
		return audio.Discard{}
	}
	printOK(fmt.Sprintf("speaker %d Hz", cfg.SampleRate))
	return synth
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
