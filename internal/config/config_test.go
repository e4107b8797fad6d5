package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT",
		"GRPC_ENABLED", "GRPC_PORT", "METRICS_ENABLED",
		"READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		// t.Setenv registers the restore; the variable is then removed outright.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.GRPC.Enabled)
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, ":9090", cfg.GetGRPCAddr())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("GRPC_ENABLED", "true")
	t.Setenv("GRPC_PORT", "3001")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.GetHTTPAddr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.GRPC.Enabled)
	assert.Equal(t, ":3001", cfg.GetGRPCAddr())
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.ShutdownTimeout)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:  8080,
			LogLevel:  "info",
			LogFormat: "json",
			GRPC:      GRPCConfig{Port: 9090},
			Timeouts:  TimeoutConfig{ShutdownTimeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"http port zero", func(c *Config) { c.HTTPPort = 0 }, "HTTP_PORT"},
		{"http port too large", func(c *Config) { c.HTTPPort = 70000 }, "HTTP_PORT"},
		{"grpc port ignored when disabled", func(c *Config) { c.GRPC.Port = 0 }, ""},
		{"grpc port invalid", func(c *Config) {
			c.GRPC.Enabled = true
			c.GRPC.Port = -1
		}, "GRPC_PORT"},
		{"grpc port clashes", func(c *Config) {
			c.GRPC.Enabled = true
			c.GRPC.Port = c.HTTPPort
		}, "must differ"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"zero shutdown timeout", func(c *Config) { c.Timeouts.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
