package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		Token:       "tok",
		APIURL:      "https://api.github.com/",
		PerPage:     100,
		DeleteDelay: 500 * time.Millisecond,
		Timeout:     30 * time.Second,
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gist-purge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
api_url: https://ghe.example.com/api/v3/
per_page: 50
delete_delay: 2s
timeout: 1m
`)
	fc, err := loadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, fileConfig{
		APIURL:      "https://ghe.example.com/api/v3/",
		PerPage:     50,
		DeleteDelay: 2 * time.Second,
		Timeout:     time.Minute,
	}, fc)
}

func TestLoadConfigFileErrors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfigFile(writeConfig(t, "per_page: [1, 2"))
	require.Error(t, err)
}

func TestApplyFile(t *testing.T) {
	fc := fileConfig{APIURL: "https://ghe.example.com/api/v3/", PerPage: 25, DeleteDelay: time.Second}

	t.Run("file fills unset values", func(t *testing.T) {
		got := applyFile(defaultConfig(), fc, func(string) bool { return false })
		require.Equal(t, "https://ghe.example.com/api/v3/", got.APIURL)
		require.Equal(t, 25, got.PerPage)
		require.Equal(t, time.Second, got.DeleteDelay)
		require.Equal(t, 30*time.Second, got.Timeout)
		require.Equal(t, "tok", got.Token)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		set := map[string]bool{"per-page": true, "api-url": true}
		got := applyFile(defaultConfig(), fc, func(name string) bool { return set[name] })
		require.Equal(t, "https://api.github.com/", got.APIURL)
		require.Equal(t, 100, got.PerPage)
		require.Equal(t, time.Second, got.DeleteDelay)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, defaultConfig().validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"per page too small", func(c *Config) { c.PerPage = 0 }},
		{"per page too large", func(c *Config) { c.PerPage = 101 }},
		{"zero delay", func(c *Config) { c.DeleteDelay = 0 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.validate())
		})
	}
}
