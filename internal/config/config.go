// Package config loads runtime configuration for the formcore binaries.
// Precedence, lowest to highest: built-in defaults, an optional YAML file,
// environment variables. Command-line flags sit on top and are applied by
// the binaries themselves.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcore/pkg/address"
)

// Config is the full runtime configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	UI          UIConfig          `yaml:"ui"`
}

// ServerConfig configures the HTTP listeners.
type ServerConfig struct {
	// Addr is the listen address for the suggestion API.
	Addr string `yaml:"addr" env:"FORMCORE_SERVER_ADDR"`
	// BasePath prefixes every mounted route.
	BasePath string `yaml:"base_path" env:"FORMCORE_SERVER_BASE_PATH"`
	// CORS controls whether the suggestion API answers cross-origin
	// requests.
	CORS bool `yaml:"cors" env:"FORMCORE_SERVER_CORS"`
}

// SuggestionsConfig configures the address lookup clients and server.
type SuggestionsConfig struct {
	// URL is the endpoint form shells fetch suggestions from.
	URL string `yaml:"url" env:"FORMCORE_SUGGESTIONS_URL"`
	// Limit is how many results a plain lookup returns.
	Limit int `yaml:"limit" env:"FORMCORE_SUGGESTIONS_LIMIT"`
}

// UIConfig configures the rendering shells.
type UIConfig struct {
	Title   string `yaml:"title" env:"FORMCORE_UI_TITLE"`
	Theme   string `yaml:"theme" env:"FORMCORE_UI_THEME"`
	Variant string `yaml:"variant" env:"FORMCORE_UI_VARIANT"`
}

// Default returns the built-in configuration. Defaults live here rather
// than in envDefault tags so an unset variable cannot clobber file values.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8000",
			CORS: true,
		},
		Suggestions: SuggestionsConfig{
			URL:   address.DefaultAPIURL,
			Limit: 5,
		},
		UI: UIConfig{
			Title: "Form Entry",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Suggestions.URL == "" {
		c.Suggestions.URL = address.DefaultAPIURL
	}
	if c.Suggestions.Limit <= 0 {
		c.Suggestions.Limit = 5
	}
	if c.UI.Title == "" {
		c.UI.Title = "Form Entry"
	}
}
