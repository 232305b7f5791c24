package config

import (
	"fmt"
	"strings"
)

// GrpcServerConfig configures the gRPC health server. It is optional: an empty port disables it.
type GrpcServerConfig struct {
	Port              string `koanf:"port"`
	ReflectionEnabled bool   `koanf:"reflection"`
}

// Enabled reports whether the gRPC server should be started.
func (c *GrpcServerConfig) Enabled() bool {
	return c.Port != ""
}

// String returns a string representation of the gRPC server configuration.
func (c *GrpcServerConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- gRPC Server ---\n")
	b.WriteString(fmt.Sprintf("  port: %s\n", c.Port))
	b.WriteString(fmt.Sprintf("  reflection: %t\n", c.ReflectionEnabled))
	return b.String()
}

func (c *GrpcServerConfig) Validate() error {
	if c.Port != "" && strings.ContainsAny(c.Port, " /") {
		return fmt.Errorf("invalid gRPC port: %q", c.Port)
	}
	return nil
}
