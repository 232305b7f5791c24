package config

import (
	"fmt"
	"strings"
	"time"
)

// RateLimitConfig allows Requests per Window for each client address.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Cleanup  time.Duration `koanf:"cleanup"`
}

// String returns a string representation of the rate limit configuration.
func (c *RateLimitConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Rate Limit ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  requests: %d\n", c.Requests))
	b.WriteString(fmt.Sprintf("  window: %s\n", c.Window))
	b.WriteString(fmt.Sprintf("  cleanup: %s\n", c.Cleanup))
	return b.String()
}

func (c *RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Requests <= 0 {
		return fmt.Errorf("rate limit requests must be greater than 0: %d", c.Requests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("rate limit window must be greater than 0: %s", c.Window)
	}
	if c.Cleanup <= 0 {
		c.Cleanup = c.Window
	}
	return nil
}
