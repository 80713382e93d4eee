// Package config loads server settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MORALMAZE_"

type Settings struct {
	Maze   MazeSettings   `yaml:"maze" envPrefix:"MAZE_"`
	Age    AgeSettings    `yaml:"age" envPrefix:"AGE_"`
	AI     AISettings     `yaml:"ai" envPrefix:"AI_"`
	Save   SaveSettings   `yaml:"save" envPrefix:"SAVE_"`
	Server ServerSettings `yaml:"server" envPrefix:"SERVER_"`
}

type MazeSettings struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
	// Seed fixes the first maze of a new profile.
	Seed        *int64 `yaml:"seed" env:"SEED"`
	DissolveCap int    `yaml:"dissolve_cap" env:"DISSOLVE_CAP"`
}

type AgeSettings struct {
	Start int `yaml:"start" env:"START"`
	Goal  int `yaml:"goal" env:"GOAL"`
}

type AISettings struct {
	// Provider is one of auto, local, openai, ollama or groq.
	Provider   string        `yaml:"provider" env:"PROVIDER"`
	BaseURL    string        `yaml:"base_url" env:"BASE_URL"`
	Model      string        `yaml:"model" env:"MODEL"`
	APIKey     string        `yaml:"api_key" env:"API_KEY"`
	Timeout    time.Duration `yaml:"timeout" env:"TIMEOUT"`
	MaxRetries int           `yaml:"max_retries" env:"MAX_RETRIES"`
}

type SaveSettings struct {
	// URL selects the snapshot store: file://, sqlite:// or postgresql://.
	URL           string `yaml:"url" env:"URL"`
	Profile       string `yaml:"profile" env:"PROFILE"`
	MigrationsDir string `yaml:"migrations_dir" env:"MIGRATIONS_DIR"`
}

type ServerSettings struct {
	Port               int           `yaml:"port" env:"PORT"`
	AllowedOrigin      string        `yaml:"allowed_origin" env:"ALLOWED_ORIGIN"`
	LogLevel           string        `yaml:"log_level" env:"LOG_LEVEL"`
	CheckpointInterval time.Duration `yaml:"checkpoint_interval" env:"CHECKPOINT_INTERVAL"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Maze: MazeSettings{
			Width:       24,
			Height:      18,
			DissolveCap: 2,
		},
		Age: AgeSettings{
			Start: 10,
			Goal:  90,
		},
		AI: AISettings{
			Provider:   "auto",
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
		Save: SaveSettings{
			URL:           "file://./save/profile.json",
			Profile:       "default",
			MigrationsDir: "./migrations",
		},
		Server: ServerSettings{
			Port:               8000,
			AllowedOrigin:      "*",
			LogLevel:           "info",
			CheckpointInterval: 5 * time.Second,
		},
	}
}

// Load builds settings from the defaults, the YAML file at path and the
// environment. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn("Config file %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, s); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := ParseEnv(s); err != nil {
		return nil, err
	}
	if s.AI.APIKey == "" {
		s.AI.APIKey = providerKey(s.AI.Provider)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseEnv overlays MORALMAZE_* environment variables onto target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// providerKey reads the vendor's conventional key variable.
func providerKey(provider string) string {
	switch strings.ToLower(provider) {
	case "groq":
		return os.Getenv("GROQ_API_KEY")
	case "ollama", "local":
		return ""
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

// Validate reports the first setting that cannot be used.
func (s *Settings) Validate() error {
	switch {
	case s.Maze.Width < 2 || s.Maze.Height < 2:
		return fmt.Errorf("maze must be at least 2x2, got %dx%d", s.Maze.Width, s.Maze.Height)
	case s.Maze.DissolveCap < 1:
		return fmt.Errorf("dissolve cap must be positive, got %d", s.Maze.DissolveCap)
	case s.Age.Start < 0:
		return fmt.Errorf("start age must not be negative, got %d", s.Age.Start)
	case s.Age.Goal <= s.Age.Start:
		return fmt.Errorf("goal age %d must exceed start age %d", s.Age.Goal, s.Age.Start)
	case s.Server.Port < 1 || s.Server.Port > 65535:
		return fmt.Errorf("invalid port %d", s.Server.Port)
	case s.Server.CheckpointInterval <= 0:
		return fmt.Errorf("checkpoint interval must be positive")
	case s.Save.URL == "":
		return fmt.Errorf("save url is required")
	}
	switch strings.ToLower(s.AI.Provider) {
	case "auto", "local", "openai", "ollama", "groq":
	default:
		return fmt.Errorf("unknown ai provider %q", s.AI.Provider)
	}
	return nil
}
