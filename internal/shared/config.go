package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// CommandVariant selects how imperative commands reach the daemon.
//
// The daemon ships in two deployment variants: one accepts command envelopes
// over the state websocket, the other exposes a plain HTTP /play endpoint.
const (
	CommandVariantWS   = "ws"
	CommandVariantHTTP = "http"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Commands CommandsConfig `toml:"commands"`
	Client   ClientConfig   `toml:"client"`
}

// ServerConfig locates the daemon's catalog API and state websocket.
type ServerConfig struct {
	CatalogURL string `toml:"catalog_url"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
}

// CommandsConfig selects and tunes the command transport.
type CommandsConfig struct {
	Variant        string  `toml:"variant"`          // "ws" or "http"
	VolumePerSec   float64 `toml:"volume_per_sec"`   // volume command rate limit
	VolumeBurst    int     `toml:"volume_burst"`     // limiter burst size
	DefaultPlayer  int     `toml:"default_player"`   // player targeted when no --player flag is given
	HTTPCommandURL string  `toml:"http_command_url"` // base URL for the http variant, defaults to ws host/port
}

// ClientConfig tunes catalog fetches.
type ClientConfig struct {
	PageLimit int `toml:"page_limit"`
}

// WSURL builds the websocket endpoint for state pushes and envelope commands.
func (c *Config) WSURL() string {
	return fmt.Sprintf("ws://%s:%d/ws", c.Server.Host, c.Server.Port)
}

// CommandURL builds the base URL for the HTTP command variant.
func (c *Config) CommandURL() string {
	if c.Commands.HTTPCommandURL != "" {
		return c.Commands.HTTPCommandURL
	}
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// Validate checks variant and limit values.
func (c *Config) Validate() error {
	switch c.Commands.Variant {
	case CommandVariantWS, CommandVariantHTTP:
	default:
		return fmt.Errorf("%w: unknown command variant %q", ErrInvalidConfig, c.Commands.Variant)
	}
	if c.Client.PageLimit <= 0 {
		return fmt.Errorf("%w: page_limit must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
