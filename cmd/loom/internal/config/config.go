// Package config resolves the optional loom.yaml next to an application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/loom/pkg/arena"
)

// FileName is the configuration file looked up in the project root.
const FileName = "loom.yaml"

// Config represents the optional loom.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
	Arena    ArenaConfig    `yaml:"arena"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
	// File receives logs while the terminal is in use. Empty discards them
	// during run and writes to stderr otherwise.
	File string `yaml:"file,omitempty"`
}

// ArenaConfig tunes the per-cycle view arena.
type ArenaConfig struct {
	ChunkSize int `yaml:"chunk_size,omitempty"`
}

// TerminalConfig controls the terminal backend. Unset values default to true.
type TerminalConfig struct {
	Mouse     *bool `yaml:"mouse,omitempty"`
	AltScreen *bool `yaml:"alt_screen,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	LogLevel   slog.Level
	Verbose    bool
	LogFile    string
	ChunkSize  int
	Mouse      bool
	AltScreen  bool
}

// LoadOptional reads loom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads loom.yaml (if present) and resolves defaults. A go.mod in
// dir is optional and only used to name the application.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	level := slog.LevelInfo
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	chunkSize := cfg.Arena.ChunkSize
	switch {
	case chunkSize < 0:
		return nil, fmt.Errorf("arena.chunk_size must be positive (got %d)", chunkSize)
	case chunkSize == 0:
		chunkSize = arena.DefaultChunkSize
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		LogLevel:   level,
		Verbose:    cfg.Log.Verbose,
		LogFile:    strings.TrimSpace(cfg.Log.File),
		ChunkSize:  chunkSize,
		Mouse:      boolOr(cfg.Terminal.Mouse, true),
		AltScreen:  boolOr(cfg.Terminal.AltScreen, true),
	}, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding loom.yaml or go.mod. It falls back to the current
// directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "loom_app"
	}
	return base
}
