// internal/config/config.go
//
// This package handles the optional planmorph.yaml that sits next to
// walls.json, plus the environment overrides the viewer and logger honour.
// Every setting has a default, so a missing file is not an error.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/planmorph/internal/walls"
)

const (
	// StateDir is the hidden directory PlanMorph keeps its own files in.
	StateDir = ".planmorph"
	// FileName is the optional project configuration file.
	FileName = "planmorph.yaml"

	ViewerAuto     = "auto"
	ViewerWindow   = "window"
	ViewerTerminal = "terminal"

	// EnvViewer overrides the viewer setting.
	EnvViewer = "PLANMORPH_VIEWER"
	// EnvLog overrides the log path; "off", "false" or "0" disables logging.
	EnvLog = "PLANMORPH_LOG"

	// The original figure was 8x8 inches at 100 dpi.
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
)

// ErrUnknownViewer is returned when the viewer setting is not recognised.
var ErrUnknownViewer = errors.New("unknown viewer")

// DefaultLogPath is relative to the project directory.
var DefaultLogPath = filepath.Join(StateDir, "logs", "planmorph.log")

// WindowConfig sizes the native window viewer.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// LoggingConfig controls the file log.
type LoggingConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// ProjectConfig models planmorph.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Viewer  string        `yaml:"viewer,omitempty"`
	Window  WindowConfig  `yaml:"window,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// Config holds the runtime configuration for one run.
type Config struct {
	// ProjectDir is the directory walls.json and planmorph.yaml are read from.
	ProjectDir string

	Project ProjectConfig

	getenv func(string) string
	goos   string
}

// NewConfig loads planmorph.yaml from projectDir (if present) and applies
// environment overrides.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		Project:    defaultProjectConfig(),
		getenv:     os.Getenv,
		goos:       runtime.GOOS,
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Project.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of planmorph.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ProjectDir, FileName)
}

// WallsPath returns the fixed input file.
func (c *Config) WallsPath() string {
	return filepath.Join(c.ProjectDir, walls.DefaultFile)
}

// LoggingEnabled reports whether a log file should be written.
func (c *Config) LoggingEnabled() bool {
	if c.Project.Logging.Enabled == nil {
		return true
	}
	return *c.Project.Logging.Enabled
}

// LogPath returns the absolute path of the log file.
func (c *Config) LogPath() string {
	return resolvePath(c.ProjectDir, c.Project.Logging.Path)
}

// WindowSize returns the initial window size in pixels.
func (c *Config) WindowSize() (int, int) {
	return c.Project.Window.Width, c.Project.Window.Height
}

// Viewer resolves "auto" to a concrete viewer for this machine.
func (c *Config) Viewer() string {
	if c.Project.Viewer != ViewerAuto {
		return c.Project.Viewer
	}
	if hasDisplay(c.goos, c.getenv) {
		return ViewerWindow
	}
	return ViewerTerminal
}

func (c *Config) loadProjectConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) applyEnv() {
	if c.getenv == nil {
		return
	}
	if viewer := normalizeViewer(c.getenv(EnvViewer)); viewer != "" {
		c.Project.Viewer = viewer
	}
	switch value := strings.TrimSpace(c.getenv(EnvLog)); strings.ToLower(value) {
	case "":
	case "off", "false", "0":
		disabled := false
		c.Project.Logging.Enabled = &disabled
	default:
		enabled := true
		c.Project.Logging.Enabled = &enabled
		c.Project.Logging.Path = value
	}
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Viewer:  ViewerAuto,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Logging: LoggingConfig{
			Path: DefaultLogPath,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Window.Width == 0 {
		pc.Window.Width = DefaultWindowWidth
	}
	if pc.Window.Height == 0 {
		pc.Window.Height = DefaultWindowHeight
	}
	if strings.TrimSpace(pc.Logging.Path) == "" {
		pc.Logging.Path = DefaultLogPath
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Viewer = normalizeViewer(pc.Viewer)
	if pc.Viewer == "" {
		pc.Viewer = ViewerAuto
	}
	pc.Logging.Path = strings.TrimSpace(pc.Logging.Path)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.Viewer {
	case ViewerAuto, ViewerWindow, ViewerTerminal:
	default:
		return fmt.Errorf("viewer %q: %w", pc.Viewer, ErrUnknownViewer)
	}
	if pc.Window.Width < 0 || pc.Window.Height < 0 {
		return fmt.Errorf("window size must be positive")
	}
	return nil
}

func normalizeViewer(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// hasDisplay guesses whether a native window can be opened.
func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows":
		return true
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	default:
		return false
	}
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
