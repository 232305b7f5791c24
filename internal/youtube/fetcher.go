package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/topnotch/storefront/pkg/config"
)

const (
	SourceStatic = "static"
	staticNote   = "Using static video list. Set YOUTUBE_API_KEY to fetch live videos."
)

// Source is one way of listing channel videos.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Video, error)
}

// Result is what a fetch produced. Note is set only when the static list was used.
type Result struct {
	Videos []Video
	Source string
	Note   string
}

type guardedSource struct {
	source  Source
	breaker *gobreaker.CircuitBreaker[[]Video]
}

// Fetcher walks its sources in order, each behind its own circuit breaker, and falls back
// to a static list. Safe for concurrent use.
type Fetcher struct {
	sources  []guardedSource
	fallback []Video
	timeout  time.Duration
	logger   *slog.Logger
}

// New builds the production chain: the Data API when a key is configured, then the RSS feed.
func New(ctx context.Context, cfg config.YouTubeConfig, fallback []Video, logger *slog.Logger) (*Fetcher, error) {
	var sources []Source
	if cfg.APIKey != "" {
		api, err := NewAPISource(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, api)
	}
	sources = append(sources, NewRSSSource(&http.Client{Timeout: cfg.Timeout}, cfg.FeedBaseURL, cfg.ChannelHandle))
	return NewFetcher(cfg, fallback, logger, sources...), nil
}

func NewFetcher(cfg config.YouTubeConfig, fallback []Video, logger *slog.Logger, sources ...Source) *Fetcher {
	logger = logger.With("component", "youtube")
	f := &Fetcher{
		fallback: append([]Video(nil), fallback...),
		timeout:  cfg.Timeout,
		logger:   logger,
	}
	for _, s := range sources {
		f.sources = append(f.sources, guardedSource{
			source:  s,
			breaker: newBreaker("youtube-"+s.Name(), cfg.Breaker, logger),
		})
	}
	return f
}

func newBreaker(name string, cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[[]Video] {
	return gobreaker.NewCircuitBreaker[[]Video](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// Fetch never fails: when every live source errors or is open, the static list is returned.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	for _, gs := range f.sources {
		videos, err := f.fetchOne(ctx, gs)
		if err != nil {
			f.logger.WarnContext(ctx, "Video source failed", "source", gs.source.Name(), "error", err)
			continue
		}
		return Result{Videos: videos, Source: gs.source.Name()}
	}
	return Result{
		Videos: append([]Video(nil), f.fallback...),
		Source: SourceStatic,
		Note:   staticNote,
	}
}

func (f *Fetcher) fetchOne(ctx context.Context, gs guardedSource) ([]Video, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	videos, err := gs.breaker.Execute(func() ([]Video, error) {
		videos, err := gs.source.Fetch(ctx)
		if err == nil && len(videos) == 0 {
			err = ErrNoVideos
		}
		return videos, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gs.source.Name(), err)
	}
	return videos, nil
}
