// Package payment simulates M-Pesa STK push initiation and status polling.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/topnotch/storefront/pkg/idgen"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

var (
	ErrMissingFields    = errors.New("phone number, amount, and order id are required")
	ErrInvalidPhone     = errors.New("invalid phone number format")
	ErrMissingReference = errors.New("payment id or order id is required")
)

const (
	StatusPending = "pending"

	initiatedMessage = "Payment request initiated. Please check your phone for M-Pesa prompt."
	awaitingMessage  = "Awaiting M-Pesa confirmation"
)

var kenyanPhone = regexp.MustCompile(`^(\+254|0)[17]\d{8}$`)

// NormalizePhone removes whitespace, checks the number is a Kenyan mobile number
// (+2547XXXXXXXX, 07XXXXXXXX, +2541XXXXXXXX or 01XXXXXXXX) and returns it as 254XXXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	clean := strings.Join(strings.Fields(phone), "")
	if !kenyanPhone.MatchString(clean) {
		return "", ErrInvalidPhone
	}
	switch {
	case strings.HasPrefix(clean, "0"):
		return "254" + clean[1:], nil
	case strings.HasPrefix(clean, "+254"):
		return clean[1:], nil
	default:
		return clean, nil
	}
}

type MpesaRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	OrderID     string `json:"orderId" validate:"required"`
}

type Payment struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	Message     string `json:"message,omitempty"`
}

type Status struct {
	PaymentID string `json:"paymentId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// PaymentService defines the payment operations exposed over HTTP.
type PaymentService interface {
	// InitiateMpesa returns ErrMissingFields or ErrInvalidPhone for bad input.
	InitiateMpesa(ctx context.Context, req MpesaRequest) (*Payment, error)
	// MpesaStatus returns ErrMissingReference when both ids are empty.
	MpesaStatus(ctx context.Context, paymentID, orderID string) (*Status, error)
	Get(ctx context.Context, id string) (*Payment, error)
}

type Service struct {
	publisher      messaging.Publisher
	validate       *validator.Validate
	logger         *slog.Logger
	paymentCounter metric.Int64Counter
	now            func() time.Time
}

func NewService(publisher messaging.Publisher, logger *slog.Logger) *Service {
	meter := otel.Meter("storefront/payment")
	paymentCounter, err := meter.Int64Counter("payments_initiated", metric.WithDescription("Total number of initiated M-Pesa payments"))
	if err != nil {
		panic(fmt.Sprintf("failed to create payments_initiated counter: %v", err))
	}
	return &Service{
		publisher:      publisher,
		validate:       validator.New(),
		logger:         logger.With("component", "payment"),
		paymentCounter: paymentCounter,
		now:            time.Now,
	}
}

// InitiateMpesa accepts a payment request. No request reaches Safaricom; the payment stays pending.
func (s *Service) InitiateMpesa(ctx context.Context, req MpesaRequest) (*Payment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}
	phone, err := NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	p := &Payment{
		ID:          idgen.New("MPESA", createdAt),
		PhoneNumber: phone,
		Amount:      req.Amount,
		OrderID:     req.OrderID,
		Status:      StatusPending,
		CreatedAt:   createdAt.Format(time.RFC3339),
		Message:     initiatedMessage,
	}
	s.logger.InfoContext(ctx, "M-Pesa payment initiated",
		slog.String("payment_id", p.ID),
		slog.String("order_id", p.OrderID),
		slog.Int64("amount", p.Amount),
	)

	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.PaymentInitiatedEvent{
		Carrier:     carrier,
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		PhoneNumber: p.PhoneNumber,
		Amount:      p.Amount,
		CreatedAt:   createdAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish PaymentInitiatedEvent", "payment_id", p.ID, "error", err)
	}
	s.paymentCounter.Add(ctx, 1)
	return p, nil
}

func (s *Service) MpesaStatus(_ context.Context, paymentID, orderID string) (*Status, error) {
	if paymentID == "" && orderID == "" {
		return nil, ErrMissingReference
	}
	return &Status{
		PaymentID: paymentID,
		OrderID:   orderID,
		Status:    StatusPending,
		Message:   awaitingMessage,
	}, nil
}

// Get reports a payment as pending; payments are not stored.
func (s *Service) Get(_ context.Context, id string) (*Payment, error) {
	return &Payment{
		ID:        id,
		Status:    StatusPending,
		Amount:    0,
		OrderID:   "",
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}
