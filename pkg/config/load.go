package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

// Load builds a Config out of the environment, falling back to the
// defaults for anything that is unset.  PORT, when present, replaces
// only the port portion of the bind address.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Bind:          DefaultBind,
		QuestionsFile: getenv("TRIVIA_QUESTIONS"),
		LogLevel:      getenv("LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if b := getenv("TRIVIA_BIND"); b != "" {
		cfg.Bind = b
	}
	if p := getenv("PORT"); p != "" {
		if err := cfg.SetPort(p); err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetPort replaces the port in the bind address while keeping the
// host.
func (c *Config) SetPort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	host, _, err := net.SplitHostPort(c.Bind)
	if err != nil {
		host = ""
	}
	c.Bind = net.JoinHostPort(host, strconv.Itoa(n))
	return nil
}

// Validate checks that the bind address is usable.
func (c *Config) Validate() error {
	_, port, err := net.SplitHostPort(c.Bind)
	if err != nil {
		return fmt.Errorf("invalid bind address %q: %w", c.Bind, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid bind address %q: bad port", c.Bind)
	}
	return nil
}

// Port returns the port portion of the bind address.
func (c *Config) Port() string {
	_, port, _ := net.SplitHostPort(c.Bind)
	return port
}
