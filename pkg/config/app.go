package config

import (
	"fmt"
	"strings"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type AppConfig struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
	Env     string `koanf:"env"`
}

// IsProduction reports whether the application runs in production mode.
func (c *AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

// String returns a string representation of the application configuration.
func (c *AppConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Application ---\n")
	b.WriteString(fmt.Sprintf("  name: %s\n", c.Name))
	b.WriteString(fmt.Sprintf("  version: %s\n", c.Version))
	b.WriteString(fmt.Sprintf("  env: %s\n", c.Env))
	return b.String()
}

func (c *AppConfig) Validate() error {
	if c.Name == "" {
		c.Name = "storefront"
	}
	switch c.Env {
	case "":
		c.Env = EnvDevelopment
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown application environment: %s", c.Env)
	}
	return nil
}
