// Package config loads the service's TOML configuration document at
// start-up, following the same "one struct per table" shape the reference
// stack uses for its own configuration (internal/config.Config in the
// teacher repo), reusing github.com/pelletier/go-toml/v2 for parsing.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Redis holds the [redis] table.
type Redis struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Database int    `toml:"database"`
}

// Server holds the [server] table.
type Server struct {
	ListenAddr   string `toml:"listen_addr"`
	ProxyBaseURL string `toml:"proxy_base_url"`
}

// Catalogue holds the [catalogue] table.
type Catalogue struct {
	ShinnkuPath  string `toml:"shinnku_path"`
	Galgame0Path string `toml:"galgame0_path"`
}

// Config is the parsed configuration document.
type Config struct {
	Redis     Redis     `toml:"redis"`
	Server    Server    `toml:"server"`
	Catalogue Catalogue `toml:"catalogue"`
}

// Default returns the configuration used when no document is supplied, and
// is also the baseline that Load fills gaps in: any table omitted from the
// TOML document keeps its default value here.
func Default() Config {
	return Config{
		Server: Server{
			ListenAddr:   ":8080",
			ProxyBaseURL: "http://127.0.0.1:2998",
		},
		Catalogue: Catalogue{
			ShinnkuPath:  "data/shinnku_bucket_files.json",
			Galgame0Path: "data/galgame0_bucket_files.json",
		},
		Redis: Redis{
			Host: "127.0.0.1",
			Port: 6379,
		},
	}
}

// Load reads and parses path as a TOML document. A missing or malformed
// file is a fatal bootstrap error per spec.md §7; callers that want to
// tolerate an absent file (tests) should stat the path themselves first.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return cfg, nil
}
