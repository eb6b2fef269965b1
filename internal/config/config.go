// Package config loads tool configuration from defaults, an optional
// tasklist.toml file, environment variables, and CLI flags, in that
// priority order.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

// Defaults.
const (
	DefaultDB    = jsonstore.DefaultPath
	DefaultHost  = "127.0.0.1"
	DefaultPort  = 8000
	DefaultTheme = "classic"
)

// ConfigFileName is looked up in the current working directory.
const ConfigFileName = "tasklist.toml"

// Config holds the resolved settings for a single invocation.
type Config struct {
	Store StoreConfig `toml:"store"`
	Web   WebConfig   `toml:"web"`
	UI    UIConfig    `toml:"ui"`
}

// StoreConfig configures the JSON data file.
type StoreConfig struct {
	DB string `toml:"db"`
}

// WebConfig configures the local HTTP listener.
type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// UIConfig configures terminal output.
type UIConfig struct {
	Theme string `toml:"theme"`
	Group bool   `toml:"group"`
}

// Load resolves configuration and returns the remaining positional
// args (the subcommand and its arguments).
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if err := loadConfigFile(cfg, ConfigFileName); err != nil {
		return nil, nil, err
	}
	loadFromEnv(cfg)

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.StringVar(&cfg.Store.DB, "db", cfg.Store.DB, "path to JSON database file")
	fs.StringVar(&cfg.UI.Theme, "theme", cfg.UI.Theme, "output theme: classic, neon, mono")
	fs.BoolVar(&cfg.UI.Group, "group", cfg.UI.Group, "group list output by pending/done")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func setDefaults(cfg *Config) {
	cfg.Store.DB = DefaultDB
	cfg.Web.Host = DefaultHost
	cfg.Web.Port = DefaultPort
	cfg.UI.Theme = DefaultTheme
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_DB"); v != "" {
		cfg.Store.DB = v
	}
	if v := os.Getenv("TASKLIST_HOST"); v != "" {
		cfg.Web.Host = v
	}
	if v := os.Getenv("TASKLIST_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Web.Port = p
		}
	}
	if v := os.Getenv("TASKLIST_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}
