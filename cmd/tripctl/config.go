package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clemv/trip-journal/client"
)

const defaultServer = "http://localhost:4000"

// cliConfig is the ~/.tripctl.yaml file: the server to talk to and the
// bearer token saved by the last "tripctl login".
type cliConfig struct {
	Server string `yaml:"server"`
	Token  string `yaml:"token,omitempty"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".tripctl.yaml"), nil
}

// loadConfig reads ~/.tripctl.yaml. A missing file yields the defaults.
func loadConfig() (cliConfig, error) {
	cfg := cliConfig{Server: defaultServer}

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Server == "" {
		cfg.Server = defaultServer
	}
	return cfg, nil
}

// saveConfig writes ~/.tripctl.yaml with owner-only permissions, since it
// holds the bearer token.
func saveConfig(cfg cliConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// newClient builds a client from the config file and the --server flag.
func newClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	return client.New(server, client.WithTokenSource(func(context.Context) (string, error) {
		return cfg.Token, nil
	})), nil
}
