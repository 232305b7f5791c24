package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/topnotch/storefront/pkg/config"
	"github.com/topnotch/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// legacyYouTubeKey is honoured when youtube.apiKey is not configured.
const legacyYouTubeKey = "YOUTUBE_API_KEY"

type Config struct {
	App        config.AppConfig        `koanf:"app"`
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
	CORS       config.CORSConfig       `koanf:"cors"`
	Security   config.SecurityConfig   `koanf:"security"`
	RateLimit  config.RateLimitConfig  `koanf:"ratelimit"`
	Nats       config.NATSConfig       `koanf:"nats"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Metrics    config.MetricsConfig    `koanf:"metrics"`
	YouTube    config.YouTubeConfig    `koanf:"youtube"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.App.String())
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString(c.CORS.String())
	b.WriteString(c.Security.String())
	b.WriteString(c.RateLimit.String())
	b.WriteString(c.Nats.String())
	b.WriteString(c.YouTube.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid and fills in defaults.
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv(legacyYouTubeKey)
	}
	validators := []configloader.Validator{
		&c.App,
		&c.HTTPServer,
		&c.GRPC,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.CORS,
		&c.Security,
		&c.RateLimit,
		&c.Nats,
		&c.Telemetry,
		&c.Metrics,
		&c.YouTube,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if c.App.IsProduction() && c.PProf.Enabled && !c.PProf.Loopback() {
		return fmt.Errorf("pprof must listen on a loopback address in production: %s", c.PProf.Addr)
	}
	return nil
}
