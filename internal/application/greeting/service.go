package greeting

import (
	"os"
)

const (
	// HostnameEnv is the environment variable that names the host
	HostnameEnv = "HOSTNAME"

	// UnknownHost is reported when HostnameEnv is unset or empty
	UnknownHost = "unknown"

	// HealthStatus is the static body of a health check
	HealthStatus = "OK"

	greetingPrefix = "Hello from "
)

// EnvFunc returns the value of an environment variable, "" when unset
type EnvFunc func(key string) string

// Service produces greeting and health responses.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	getenv EnvFunc
}

// NewService creates a greeting service.
// A nil getenv falls back to os.Getenv.
func NewService(getenv EnvFunc) *Service {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Service{getenv: getenv}
}

// Greeting returns "Hello from <HOSTNAME>", or "Hello from unknown"
func (s *Service) Greeting() string {
	return greetingPrefix + s.Hostname()
}

// Hostname returns the host identity used in the greeting
func (s *Service) Hostname() string {
	return Lookup(s.getenv, HostnameEnv, UnknownHost)
}

// Health returns the health status string
func (s *Service) Health() string {
	return HealthStatus
}

// Lookup reads key through getenv and returns def when the value is empty
func Lookup(getenv EnvFunc, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
