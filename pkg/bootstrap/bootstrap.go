// Package bootstrap wires process-level infrastructure shared by the commands.
package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/topnotch/storefront/pkg/config"
	"github.com/topnotch/storefront/pkg/logger"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/nats"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
// Records carry request and trace ids taken from the context.
func NewLogger(level string) *slog.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := logger.NewContextHandler(slog.NewJSONHandler(w, loggerOpts))
	return slog.New(logHandler)
}

// NewPublisher returns a JetStream backed publisher when NATS is configured,
// otherwise a publisher that only logs events. The returned function releases the connection.
func NewPublisher(ctx context.Context, cfg config.NATSConfig, log *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled() {
		log.Info("NATS is not configured, events will only be logged")
		return messaging.NewLogPublisher(log), func() {}, nil
	}
	nc, err := nats.NewClient(cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	if err := nats.EnsureStream(ctx, js, cfg.Stream); err != nil {
		nc.Close()
		return nil, nil, err
	}
	log.Info("Connected to NATS", slog.String("url", cfg.Url), slog.String("stream", cfg.Stream))
	closeFn := func() {
		if err := nc.Drain(); err != nil {
			log.Error("Failed to drain NATS connection", slog.String("error", err.Error()))
		}
	}
	return nats.NewNatsPublisher(js, cfg.Stream), closeFn, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

