// Package order provides order creation for the storefront checkout.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	ordererrors "github.com/topnotch/storefront/internal/order/errors"
	"github.com/topnotch/storefront/pkg/idgen"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/messaging/events"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

const StatusPending = "pending"

// OrderService defines the methods for managing orders.
type OrderService interface {
	// Create validates and accepts a new order.
	// Returns ErrNoItems, ErrInvalidItem, ErrInvalidTotal or ErrCustomerRequired for incomplete input.
	Create(ctx context.Context, order OrderCreateDto) (*OrderDto, error)

	// List returns stored orders. Orders are not persisted, so the list is always empty.
	List(ctx context.Context) ([]OrderDto, error)
}

// Service implements OrderService.
type Service struct {
	publisher     messaging.Publisher
	validate      *validator.Validate
	logger        *slog.Logger
	ordersCounter metric.Int64Counter
	now           func() time.Time
}

// NewService creates a new instance of OrderService that announces accepted orders on publisher.
func NewService(publisher messaging.Publisher, logger *slog.Logger) *Service {
	meter := otel.Meter("storefront/order")
	ordersCounter, err := meter.Int64Counter("orders_created", metric.WithDescription("Total number of created orders"))
	if err != nil {
		panic(fmt.Sprintf("failed to create orders_created counter: %v", err))
	}
	return &Service{
		publisher:     publisher,
		validate:      validator.New(),
		logger:        logger.With("component", "order"),
		ordersCounter: ordersCounter,
		now:           time.Now,
	}
}

type Customer struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type OrderItemDto struct {
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title"`
	Price    int64  `json:"price" validate:"min=0"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// OrderCreateDto represents the data transfer object for creating a new order.
// Total is taken as given; when omitted it is computed from the items.
type OrderCreateDto struct {
	Items         []OrderItemDto `json:"items" validate:"required,gt=0,dive"`
	Customer      *Customer      `json:"customer" validate:"required"`
	Total         int64          `json:"total" validate:"min=0"`
	PaymentMethod string         `json:"paymentMethod"`
}

// OrderDto represents an accepted order.
type OrderDto struct {
	ID            string         `json:"id"`
	Items         []OrderItemDto `json:"items"`
	Customer      Customer       `json:"customer"`
	Total         int64          `json:"total"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdAt"`
}

// Create validates the order, assigns an id and publishes an OrderCreatedEvent.
func (s *Service) Create(ctx context.Context, dto OrderCreateDto) (*OrderDto, error) {
	if err := s.check(dto); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	total := dto.Total
	if total == 0 {
		var ok bool
		if total, ok = itemsTotal(dto.Items); !ok {
			return nil, ordererrors.ErrInvalidTotal
		}
	}
	created := &OrderDto{
		ID:            idgen.New("ORD", createdAt),
		Items:         append([]OrderItemDto(nil), dto.Items...),
		Customer:      *dto.Customer,
		Total:         total,
		PaymentMethod: dto.PaymentMethod,
		Status:        StatusPending,
		CreatedAt:     createdAt.Format(time.RFC3339),
	}
	s.logger.InfoContext(ctx, "New order created",
		slog.String("order_id", created.ID),
		slog.Int("items", len(created.Items)),
		slog.Int64("total", created.Total),
		slog.String("payment_method", created.PaymentMethod),
	)

	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.OrderCreatedEvent{
		Carrier:       carrier,
		OrderID:       created.ID,
		CustomerEmail: created.Customer.Email,
		ItemCount:     len(created.Items),
		Total:         created.Total,
		PaymentMethod: created.PaymentMethod,
		CreatedAt:     createdAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish OrderCreatedEvent", "order_id", created.ID, "error", err)
	}
	// increase the number of created orders
	s.ordersCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_method", created.PaymentMethod)))

	return created, nil
}

// List returns an empty list; orders are only announced, never stored.
func (s *Service) List(_ context.Context) ([]OrderDto, error) {
	return []OrderDto{}, nil
}

// check maps validation failures to the order sentinel errors. Item problems are reported before customer problems.
func (s *Service) check(dto OrderCreateDto) error {
	err := s.validate.Struct(dto)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ordererrors.ErrCreateOrder, err)
	}
	var itemsErr, customerErr error
	for _, fieldErr := range validationErrors {
		ns := fieldErr.StructNamespace()
		switch {
		case strings.HasSuffix(ns, ".Items"):
			itemsErr = ordererrors.ErrNoItems
		case strings.Contains(ns, ".Items["):
			if itemsErr == nil {
				itemsErr = ordererrors.ErrInvalidItem
			}
		case strings.HasSuffix(ns, ".Total"):
			if itemsErr == nil {
				itemsErr = ordererrors.ErrInvalidTotal
			}
		case strings.Contains(ns, ".Customer"):
			customerErr = ordererrors.ErrCustomerRequired
		}
	}
	if itemsErr != nil {
		return itemsErr
	}
	if customerErr != nil {
		return customerErr
	}
	return fmt.Errorf("%w: %w", ordererrors.ErrCreateOrder, err)
}

// itemsTotal sums price times quantity. It reports false when the sum does not fit in an int64.
func itemsTotal(items []OrderItemDto) (int64, bool) {
	var total int64
	for _, item := range items {
		if item.Price == 0 {
			continue
		}
		q := int64(item.Quantity)
		if q > (math.MaxInt64-total)/item.Price {
			return 0, false
		}
		total += item.Price * q
	}
	return total, true
}
