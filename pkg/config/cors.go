package config

import (
	"fmt"
	"strings"
	"time"
)

type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowedOrigins"`
	AllowedMethods []string      `koanf:"allowedMethods"`
	AllowedHeaders []string      `koanf:"allowedHeaders"`
	MaxAge         time.Duration `koanf:"maxAge"`
}

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
)

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  allowedOrigins: %s\n", strings.Join(c.AllowedOrigins, ",")))
	b.WriteString(fmt.Sprintf("  allowedMethods: %s\n", strings.Join(c.AllowedMethods, ",")))
	b.WriteString(fmt.Sprintf("  allowedHeaders: %s\n", strings.Join(c.AllowedHeaders, ",")))
	b.WriteString(fmt.Sprintf("  maxAge: %s\n", c.MaxAge))
	return b.String()
}

// Validate fills in defaults for the optional lists.
func (c *CORSConfig) Validate() error {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = defaultCORSMethods
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = defaultCORSHeaders
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("invalid CORS max age: %s", c.MaxAge)
	}
	if c.MaxAge == 0 {
		c.MaxAge = 24 * time.Hour
	}
	for _, origin := range c.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin: %q", origin)
		}
	}
	return nil
}
