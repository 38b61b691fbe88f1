// internal/client/config/config.go
package config

import (
	"flag"
	"os"
)

// Config holds runtime settings for the evently CLI.
type Config struct {
	// ServerAddr is the base URL of the backend API.
	ServerAddr string
	// DBPath is the local sqlite file holding the persisted session.
	DBPath string
}

func (c *Config) loadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8000"
	c.DBPath = "evently.db"
}

func (c *Config) loadEnv() {
	if v := os.Getenv("EVENTLY_SERVER"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("EVENTLY_DB"); v != "" {
		c.DBPath = v
	}
}

// Load builds a Config from defaults, environment and command-line flags,
// later sources taking precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()
	cfg.loadEnv()

	fs := flag.NewFlagSet("evently", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the backend server")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local session database")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
