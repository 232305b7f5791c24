// Package messaging defines the event publishing contract used by the domain services.
package messaging

import (
	"context"
	"log/slog"
)

const (
	OrdersCreatedSubject     = "orders.created"
	PaymentsInitiatedSubject = "payments.initiated"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes events to the log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	data, err := event.Payload()
	if err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "Event published", slog.String("subject", event.Subject()), slog.String("payload", string(data)))
	return nil
}
