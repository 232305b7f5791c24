package config

import (
	"fmt"
	"strings"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

// String returns a string representation of the HTTP server configuration.
func (c *HTTPConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- HTTP Server ---\n")
	b.WriteString(fmt.Sprintf("  port: %d\n", c.Port))
	b.WriteString(fmt.Sprintf("  maxHeaderBytes: %d\n", c.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  timeout.read: %v\n", c.Timeout.Read))
	b.WriteString(fmt.Sprintf("  timeout.write: %v\n", c.Timeout.Write))
	b.WriteString(fmt.Sprintf("  timeout.idle: %v\n", c.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  timeout.readHeader: %v\n", c.Timeout.ReadHeader))
	return b.String()
}

// httpDefaults are applied to unset fields; they match a storefront API that serves small JSON bodies.
var httpDefaults = struct {
	port                             int
	maxHeaderBytes                   int
	read, write, idle, readHeaderTTL time.Duration
}{
	port:           8080,
	maxHeaderBytes: 1 << 20,
	read:           10 * time.Second,
	write:          15 * time.Second,
	idle:           60 * time.Second,
	readHeaderTTL:  5 * time.Second,
}

func (c *HTTPConfig) Validate() error {
	if c.Port == 0 {
		c.Port = httpDefaults.port
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = httpDefaults.maxHeaderBytes
	}
	timeouts := []struct {
		name  string
		value *time.Duration
		def   time.Duration
	}{
		{"read", &c.Timeout.Read, httpDefaults.read},
		{"write", &c.Timeout.Write, httpDefaults.write},
		{"idle", &c.Timeout.Idle, httpDefaults.idle},
		{"read header", &c.Timeout.ReadHeader, httpDefaults.readHeaderTTL},
	}
	for _, t := range timeouts {
		if *t.value == 0 {
			*t.value = t.def
		}
		if *t.value < 0 {
			return fmt.Errorf("invalid HTTP server %s timeout: %v", t.name, *t.value)
		}
	}
	if c.Timeout.ReadHeader > c.Timeout.Read {
		return fmt.Errorf("HTTP server read header timeout %v exceeds read timeout %v", c.Timeout.ReadHeader, c.Timeout.Read)
	}
	return nil
}
