// Package daemon wires ParcelDesk together: data home, TOML config,
// SQLite storage, and the HTTP server lifecycle.
package daemon

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the config filename inside the data home.
const ConfigFile = "config.toml"

// Config is the daemon configuration, stored as TOML in the data home.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Invoice InvoiceConfig `toml:"invoice"`
	Metrics MetricsConfig `toml:"metrics"`
}

// APIConfig configures the HTTP listener.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig configures where the database lives.
// An empty Path means the data home itself.
type StorageConfig struct {
	Path string `toml:"path"`
}

// InvoiceConfig configures PDF rendering.
type InvoiceConfig struct {
	Currency string `toml:"currency"`
}

// MetricsConfig configures the /metrics Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the defaults written on first run.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 5000,
		},
		Storage: StorageConfig{Path: ""},
		Invoice: InvoiceConfig{Currency: "₹"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Home returns the ParcelDesk data home, honoring PARCELDESK_HOME.
func Home() (string, error) {
	if home := os.Getenv("PARCELDESK_HOME"); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, ".parceldesk"), nil
}

// LoadConfig reads config.toml under dir, writing the defaults first if
// no file exists yet.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFile)
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, SaveConfig(dir, cfg)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as config.toml under dir.
func SaveConfig(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, ConfigFile))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ListenAddr returns the host:port the HTTP server binds.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port))
}

// DataDir resolves the database directory for the given data home.
func (c Config) DataDir(home string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return home
}
