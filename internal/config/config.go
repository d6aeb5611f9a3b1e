package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Display backends.
const (
	DisplayTUI    = "tui"
	DisplayWindow = "window"
)

// Config holds the tunables for tailing and presenting a command log.
type Config struct {
	LogPath         string
	Display         string
	BatchBudget     time.Duration
	IdleInterval    time.Duration
	PresentInterval time.Duration
	WaitInterval    time.Duration
	SafetyMargin    int64
	MaxLineBytes    int
	LogFile         string
	WindowScale     int
}

const (
	defaultConfigPath      = "~/.config/gratail/config.toml"
	defaultLogPath         = "vga_out.gra"
	defaultLogFile         = "~/.local/state/gratail/gratail.log"
	defaultBatchBudget     = 250 * time.Millisecond
	defaultIdleInterval    = 10 * time.Millisecond
	defaultPresentInterval = 100 * time.Millisecond
	defaultWaitInterval    = 100 * time.Millisecond
	defaultSafetyMargin    = 100
	defaultMaxLineBytes    = 4096
	defaultWindowScale     = 1
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogPath:         defaultLogPath,
		Display:         DisplayTUI,
		BatchBudget:     defaultBatchBudget,
		IdleInterval:    defaultIdleInterval,
		PresentInterval: defaultPresentInterval,
		WaitInterval:    defaultWaitInterval,
		SafetyMargin:    defaultSafetyMargin,
		MaxLineBytes:    defaultMaxLineBytes,
		LogFile:         mustExpand(defaultLogFile),
		WindowScale:     defaultWindowScale,
	}
}

// Load locates and parses the gratail config, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath           string  `toml:"log_path"`
		Display           string  `toml:"display"`
		BatchBudgetMS     int     `toml:"batch_budget_ms"`
		IdleIntervalMS    int     `toml:"idle_interval_ms"`
		PresentIntervalMS int     `toml:"present_interval_ms"`
		WaitIntervalMS    int     `toml:"wait_interval_ms"`
		SafetyMargin      *int64  `toml:"safety_margin"`
		MaxLineBytes      int     `toml:"max_line_bytes"`
		LogFile           *string `toml:"log_file"`
		WindowScale       int     `toml:"window_scale"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Display)); v != "" {
		cfg.Display = v
	}
	cfg.BatchBudget = millis(raw.BatchBudgetMS, cfg.BatchBudget)
	cfg.IdleInterval = millis(raw.IdleIntervalMS, cfg.IdleInterval)
	cfg.PresentInterval = millis(raw.PresentIntervalMS, cfg.PresentInterval)
	cfg.WaitInterval = millis(raw.WaitIntervalMS, cfg.WaitInterval)
	if raw.SafetyMargin != nil && *raw.SafetyMargin >= 0 {
		cfg.SafetyMargin = *raw.SafetyMargin
	}
	if raw.MaxLineBytes > 0 {
		cfg.MaxLineBytes = raw.MaxLineBytes
	}
	if raw.LogFile != nil {
		// An explicit empty value disables the log file.
		cfg.LogFile = ""
		if v := strings.TrimSpace(*raw.LogFile); v != "" {
			cfg.LogFile = mustExpand(v)
		}
	}
	if raw.WindowScale > 0 {
		cfg.WindowScale = raw.WindowScale
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Display {
	case DisplayTUI, DisplayWindow:
	default:
		return fmt.Errorf("display %q: want %q or %q", c.Display, DisplayTUI, DisplayWindow)
	}
	if strings.TrimSpace(c.LogPath) == "" {
		return fmt.Errorf("log path is empty")
	}
	return nil
}

func millis(v int, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
