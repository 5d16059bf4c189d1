package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration.
type Config struct {
	Token       string
	APIURL      string
	PerPage     int
	DeleteDelay time.Duration
	Timeout     time.Duration
	Verbose     bool
}

// fileConfig mirrors the optional YAML config file. The token only comes from
// the flag or GITHUB_TOKEN, never from the file.
type fileConfig struct {
	APIURL      string        `yaml:"api_url"`
	PerPage     int           `yaml:"per_page"`
	DeleteDelay time.Duration `yaml:"delete_delay"`
	Timeout     time.Duration `yaml:"timeout"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}

// applyFile fills every setting that was not given on the command line or
// through the environment from the config file.
func applyFile(cfg Config, fc fileConfig, isSet func(name string) bool) Config {
	if !isSet("api-url") && fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if !isSet("per-page") && fc.PerPage != 0 {
		cfg.PerPage = fc.PerPage
	}
	if !isSet("delete-delay") && fc.DeleteDelay != 0 {
		cfg.DeleteDelay = fc.DeleteDelay
	}
	if !isSet("timeout") && fc.Timeout != 0 {
		cfg.Timeout = fc.Timeout
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.PerPage < 1 || cfg.PerPage > 100 {
		return fmt.Errorf("per-page must be between 1 and 100, got %d", cfg.PerPage)
	}
	if cfg.DeleteDelay <= 0 {
		return fmt.Errorf("delete-delay must be positive, got %s", cfg.DeleteDelay)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

func resolveConfig(c *cli.Context) (Config, error) {
	cfg := Config{
		Token:       c.String("github-token"),
		APIURL:      c.String("api-url"),
		PerPage:     c.Int("per-page"),
		DeleteDelay: c.Duration("delete-delay"),
		Timeout:     c.Duration("timeout"),
		Verbose:     c.Bool("verbose"),
	}

	if path := c.String("config"); path != "" {
		fc, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = applyFile(cfg, fc, c.IsSet)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
