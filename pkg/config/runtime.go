package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// LogConfig selects the minimum level of the process logger.
type LogConfig struct {
	Level string `koanf:"level"`
}

// levelAliases maps accepted spellings onto the levels the logger understands.
var levelAliases = map[string]string{
	"":        "info",
	"debug":   "debug",
	"info":    "info",
	"warn":    "warn",
	"warning": "warn",
	"error":   "error",
}

func (c *LogConfig) String() string {
	return fmt.Sprintf("\n--- Log ---\n  level: %s\n", c.Level)
}

// Validate normalizes the level, so "WARNING" becomes "warn".
func (c *LogConfig) Validate() error {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(c.Level))]
	if !ok {
		return fmt.Errorf("unknown log level: %s", c.Level)
	}
	c.Level = level
	return nil
}

// PProfConfig controls the side listener that serves net/http/pprof.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

const defaultPProfAddr = "localhost:6060"

func (c *PProfConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- PProf ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  addr: %s\n", c.Addr))
	return b.String()
}

func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Addr == "" {
		c.Addr = defaultPProfAddr
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid pprof address %q: %w", c.Addr, err)
	}
	return nil
}

// Loopback reports whether the profiler only listens on the local machine.
func (c *PProfConfig) Loopback() bool {
	host, _, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ShutdownConfig bounds how long servers get to drain on SIGTERM.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

const (
	defaultShutdownTimeout = 10 * time.Second
	maxShutdownTimeout     = 2 * time.Minute
)

func (c *ShutdownConfig) String() string {
	return fmt.Sprintf("\n--- Shutdown ---\n  timeout: %s\n", c.Timeout)
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout == 0 {
		c.Timeout = defaultShutdownTimeout
	}
	if c.Timeout < 0 || c.Timeout > maxShutdownTimeout {
		return fmt.Errorf("shutdown timeout must be within (0, %s]: %s", maxShutdownTimeout, c.Timeout)
	}
	return nil
}
