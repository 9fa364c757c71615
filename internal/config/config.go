package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the scoredeck server.
//
// All values can come from a YAML config file, environment variables, or
// command-line flags; flags win over env, env wins over the file.
type ServerConfig struct {
	Addr        string `yaml:"addr"`         // Listen address (default ":8080")
	LogLevel    string `yaml:"log_level"`    // Log level: debug, info, warn, error
	LogFormat   string `yaml:"log_format"`   // Log format: text, json
	UpstreamURL string `yaml:"upstream_url"` // Base URL of the backend record API
	AdminID     string `yaml:"admin_id"`     // The single identity allowed to hold a session
	TokenCookie string `yaml:"token_cookie"` // Name of the bearer token cookie
	UserCookie  string `yaml:"user_cookie"`  // Name of the identity cookie
	Environment string `yaml:"environment"`  // "production" enables Secure cookies
}

// DefaultServerConfig returns sensible defaults. UpstreamURL and AdminID
// have no defaults and must be supplied externally.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "text",
		TokenCookie: "token",
		UserCookie:  "user",
		Environment: "development",
	}
}

// LoadFile merges values from a YAML file into the config.
// Unset fields in the file leave the existing values untouched.
func (c *ServerConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv overrides config values from SCOREDECK_* environment variables.
func (c *ServerConfig) LoadEnv() {
	setFromEnv(&c.Addr, "SCOREDECK_ADDR")
	setFromEnv(&c.LogLevel, "SCOREDECK_LOG_LEVEL")
	setFromEnv(&c.LogFormat, "SCOREDECK_LOG_FORMAT")
	setFromEnv(&c.UpstreamURL, "SCOREDECK_UPSTREAM_URL")
	setFromEnv(&c.AdminID, "SCOREDECK_ADMIN_ID")
	setFromEnv(&c.TokenCookie, "SCOREDECK_TOKEN_COOKIE")
	setFromEnv(&c.UserCookie, "SCOREDECK_USER_COOKIE")
	setFromEnv(&c.Environment, "SCOREDECK_ENV")
}

// Validate checks that required values are present.
func (c ServerConfig) Validate() error {
	if c.UpstreamURL == "" {
		return fmt.Errorf("upstream URL is required (SCOREDECK_UPSTREAM_URL or config file)")
	}
	if c.AdminID == "" {
		return fmt.Errorf("admin id is required (SCOREDECK_ADMIN_ID or config file)")
	}
	return nil
}

// SecureCookies reports whether session cookies should carry the Secure
// attribute. Only production traffic is assumed to be HTTPS.
func (c ServerConfig) SecureCookies() bool {
	return c.Environment == "production"
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
