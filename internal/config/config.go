// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database credentials are deliberately absent:
// they come from the secret store (see the secrets package), not from the
// process environment.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	JWTSecret     string // secret used to sign admin access tokens
	AccessTTLMin  int    // admin access token time-to-live in minutes
	SessionTTLMin int    // workflow session time-to-live in minutes
	BcryptCost    int    // bcrypt cost for password hashing
	RecentWindowH int    // trailing window for the visitor dashboard, hours
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  intOr("ACCESS_TOKEN_TTL_MIN", 60),
		SessionTTLMin: intOr("SESSION_TTL_MIN", 60),
		BcryptCost:    intOr("BCRYPT_COST", 12),
		RecentWindowH: intOr("RECENT_WINDOW_HOURS", 48),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an integer environment variable, falling back to def when
// the variable is unset.  A malformed value is fatal rather than silently
// defaulted.
func intOr(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
