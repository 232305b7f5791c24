package config

import (
	"fmt"
	"strings"
	"time"
)

type SecurityConfig struct {
	HSTSMaxAge            time.Duration `koanf:"hstsMaxAge"`
	ContentSecurityPolicy string        `koanf:"contentSecurityPolicy"`
}

// String returns a string representation of the security headers configuration.
func (c *SecurityConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Security ---\n")
	b.WriteString(fmt.Sprintf("  hstsMaxAge: %s\n", c.HSTSMaxAge))
	if c.ContentSecurityPolicy == "" {
		b.WriteString("  contentSecurityPolicy: <default>\n")
	} else {
		b.WriteString(fmt.Sprintf("  contentSecurityPolicy: %s\n", c.ContentSecurityPolicy))
	}
	return b.String()
}

func (c *SecurityConfig) Validate() error {
	if c.HSTSMaxAge < 0 {
		return fmt.Errorf("invalid HSTS max age: %s", c.HSTSMaxAge)
	}
	if c.HSTSMaxAge == 0 {
		c.HSTSMaxAge = 365 * 24 * time.Hour
	}
	return nil
}
