// Package config handles configuration loading for stalens.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TokenEnv is the environment variable consulted for the upstream bearer
// token. It always wins over the config file so tokens can stay out of
// files on shared machines.
const TokenEnv = "STALENS_TOKEN"

// Config holds the complete tool configuration.
type Config struct {
	Upstream UpstreamConfig `toml:"upstream"`
	Web      WebConfig      `toml:"web"`
}

// UpstreamConfig describes the authenticated report source.
type UpstreamConfig struct {
	// BaseURL is the root of the internal file-browsing API,
	// e.g. "https://eda-reports.internal.example.com/api".
	BaseURL string `toml:"base_url"`

	// Token is the bearer credential. Usually left empty here and
	// supplied via STALENS_TOKEN instead.
	Token string `toml:"token"`

	// Marker is the URL segment after which the report path starts when
	// a full URL is pasted instead of a bare path.
	Marker string `toml:"marker"`
}

// WebConfig holds web mode settings.
type WebConfig struct {
	Port string `toml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Upstream: UpstreamConfig{
			Marker: "/files/",
		},
		Web: WebConfig{
			Port: "8080",
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; defaults apply. The token env
// override is applied in both cases.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if tok := os.Getenv(TokenEnv); tok != "" {
		cfg.Upstream.Token = tok
	}
	if cfg.Upstream.Marker == "" {
		cfg.Upstream.Marker = "/files/"
	}
	if cfg.Web.Port == "" {
		cfg.Web.Port = "8080"
	}

	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "stalens", "config.toml")
}
