// Package events holds the payloads published by the storefront.
package events

import (
	"encoding/json"
	"time"

	"github.com/topnotch/storefront/pkg/messaging"
	"go.opentelemetry.io/otel/propagation"
)

type OrderCreatedEvent struct {
	Carrier       propagation.MapCarrier `json:"carrier,omitempty"`
	OrderID       string                 `json:"order_id"`
	CustomerEmail string                 `json:"customer_email"`
	ItemCount     int                    `json:"item_count"`
	Total         int64                  `json:"total"`
	PaymentMethod string                 `json:"payment_method"`
	CreatedAt     time.Time              `json:"created_at"`
}

func (o OrderCreatedEvent) Subject() string {
	return messaging.OrdersCreatedSubject
}

func (o OrderCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}

type PaymentInitiatedEvent struct {
	Carrier     propagation.MapCarrier `json:"carrier,omitempty"`
	PaymentID   string                 `json:"payment_id"`
	OrderID     string                 `json:"order_id"`
	PhoneNumber string                 `json:"phone_number"`
	Amount      int64                  `json:"amount"`
	CreatedAt   time.Time              `json:"created_at"`
}

func (p PaymentInitiatedEvent) Subject() string {
	return messaging.PaymentsInitiatedSubject
}

func (p PaymentInitiatedEvent) Payload() ([]byte, error) {
	return json.Marshal(p)
}
