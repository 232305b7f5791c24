package config

import (
	"fmt"
	"strings"
	"time"
)

type YouTubeConfig struct {
	APIKey        string        `koanf:"apiKey"`
	ChannelHandle string        `koanf:"channelHandle"`
	MaxResults    int64         `koanf:"maxResults"`
	Timeout       time.Duration `koanf:"timeout"`
	FeedBaseURL   string        `koanf:"feedBaseURL"`
	Breaker       BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for an outbound dependency.
type BreakerConfig struct {
	MaxRequests         uint32        `koanf:"maxRequests"`
	Interval            time.Duration `koanf:"interval"`
	Timeout             time.Duration `koanf:"timeout"`
	ConsecutiveFailures uint32        `koanf:"consecutiveFailures"`
}

const (
	defaultChannelHandle = "@TopnotchonlineTV"
	defaultFeedBaseURL   = "https://www.youtube.com/feeds/videos.xml"
)

// String returns a string representation of the YouTube configuration.
func (c *YouTubeConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- YouTube ---\n")
	if c.APIKey == "" {
		b.WriteString("  apiKey: <not configured>\n")
	} else {
		b.WriteString("  apiKey: ****\n")
	}
	b.WriteString(fmt.Sprintf("  channelHandle: %s\n", c.ChannelHandle))
	b.WriteString(fmt.Sprintf("  maxResults: %d\n", c.MaxResults))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	b.WriteString(fmt.Sprintf("  feedBaseURL: %s\n", c.FeedBaseURL))
	b.WriteString(fmt.Sprintf("  breaker.maxRequests: %d\n", c.Breaker.MaxRequests))
	b.WriteString(fmt.Sprintf("  breaker.interval: %s\n", c.Breaker.Interval))
	b.WriteString(fmt.Sprintf("  breaker.timeout: %s\n", c.Breaker.Timeout))
	b.WriteString(fmt.Sprintf("  breaker.consecutiveFailures: %d\n", c.Breaker.ConsecutiveFailures))
	return b.String()
}

func (c *YouTubeConfig) Validate() error {
	if c.ChannelHandle == "" {
		c.ChannelHandle = defaultChannelHandle
	}
	if c.FeedBaseURL == "" {
		c.FeedBaseURL = defaultFeedBaseURL
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 20
	}
	if c.MaxResults > 50 {
		return fmt.Errorf("youtube maxResults must not exceed 50: %d", c.MaxResults)
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.Breaker.ConsecutiveFailures == 0 {
		c.Breaker.ConsecutiveFailures = 3
	}
	if c.Breaker.Timeout <= 0 {
		c.Breaker.Timeout = 30 * time.Second
	}
	return nil
}
