package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Routine   RoutineConfig   `yaml:"routine"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// RoutineConfig tunes the generator. Zero values mean the built-in
// defaults (primary pass cap 5, fill minimum 6, 200 fill attempts).
type RoutineConfig struct {
	PrimaryCap   int `yaml:"primary_cap"`
	TargetCount  int `yaml:"target_count"`
	FillAttempts int `yaml:"fill_attempts"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix FITGEN_ and underscore-separated paths:
//
//	FITGEN_SERVER_HOST, FITGEN_SERVER_PORT,
//	FITGEN_TS_ENABLED, FITGEN_TS_HOSTNAME, FITGEN_TS_STATE_DIR,
//	FITGEN_ROUTINE_TARGET_COUNT
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITGEN_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FITGEN_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FITGEN_TS_ENABLED"); v != "" {
		cfg.Tailscale.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("FITGEN_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("FITGEN_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("FITGEN_ROUTINE_TARGET_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Routine.TargetCount = n
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if c.Routine.PrimaryCap < 0 || c.Routine.TargetCount < 0 || c.Routine.FillAttempts < 0 {
		return fmt.Errorf("routine settings must not be negative")
	}
	return nil
}
