package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sandeepkv93/remindlist/internal/storage"
)

const (
	AppName   = "remindlist"
	EnvPrefix = "REMINDLIST_"
)

type RuntimeConfig struct {
	Store StoreConfig `koanf:"store"`
	Log   LogConfig   `koanf:"log"`
}

type StoreConfig struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Store: StoreConfig{
			Backend: string(storage.BackendSQLite),
			Path:    filepath.Join(xdg.DataHome, AppName, "reminders.db"),
		},
		Log: LogConfig{
			File:  filepath.Join(xdg.StateHome, AppName, AppName+".log"),
			Level: "info",
		},
	}
}

func defaults() map[string]interface{} {
	d := DefaultRuntimeConfig()
	return map[string]interface{}{
		"store.backend": d.Store.Backend,
		"store.path":    d.Store.Path,
		"log.file":      d.Log.File,
		"log.level":     d.Log.Level,
		"log.json":      d.Log.JSON,
	}
}

// Load layers defaults, the optional YAML file at path and REMINDLIST_*
// environment variables, in that order.
func Load(path string) (RuntimeConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return RuntimeConfig{}, fmt.Errorf("load defaults: %w", err)
	}

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err != nil {
			return RuntimeConfig{}, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return RuntimeConfig{}, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return RuntimeConfig{}, fmt.Errorf("load env vars: %w", err)
	}

	var cfg RuntimeConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// envKey maps REMINDLIST_STORE_BACKEND to store.backend.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func (c RuntimeConfig) Validate() error {
	if _, err := storage.ParseBackend(c.Store.Backend); err != nil {
		return err
	}
	if strings.TrimSpace(c.Store.Path) == "" && c.Backend() == storage.BackendSQLite {
		return fmt.Errorf("config: store.path is required for the %s backend", storage.BackendSQLite)
	}
	return nil
}

func (c RuntimeConfig) Backend() storage.Backend {
	b, err := storage.ParseBackend(c.Store.Backend)
	if err != nil {
		return storage.BackendSQLite
	}
	return b
}
