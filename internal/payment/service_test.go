package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/messaging/events"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event messaging.Event) error {
	return m.Called(ctx, event).Error(0)
}

func newTestService(publisher messaging.Publisher) *Service {
	s := NewService(publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC) }
	return s
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		valid    bool
	}{
		{input: "0712345678", expected: "254712345678", valid: true},
		{input: "0112345678", expected: "254112345678", valid: true},
		{input: "+254712345678", expected: "254712345678", valid: true},
		{input: " 0712 345 678 ", expected: "254712345678", valid: true},
		{input: "+254 7 1234 5678", expected: "254712345678", valid: true},
		{input: "254712345678", valid: false},
		{input: "0812345678", valid: false},
		{input: "071234567", valid: false},
		{input: "07123456789", valid: false},
		{input: "+255712345678", valid: false},
		{input: "07123x5678", valid: false},
		{input: "", valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			phone, err := NormalizePhone(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, phone)
		})
	}
}

func TestService_InitiateMpesa(t *testing.T) {
	// given
	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.PaymentInitiatedEvent) bool {
		return e.OrderID == "ORD-1" && e.PhoneNumber == "254712345678" && e.Amount == 2620
	})).Return(nil).Once()
	s := newTestService(publisher)

	// when
	p, err := s.InitiateMpesa(context.Background(), MpesaRequest{PhoneNumber: "0712 345 678", Amount: 2620, OrderID: "ORD-1"})

	// then
	require.NoError(t, err)
	assert.Regexp(t, `^MPESA-1768473000000-[0-9A-Z]{9}$`, p.ID)
	assert.Equal(t, "254712345678", p.PhoneNumber)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "Payment request initiated. Please check your phone for M-Pesa prompt.", p.Message)
	assert.Equal(t, "2026-01-15T10:30:00Z", p.CreatedAt)
	publisher.AssertExpectations(t)
}

func TestService_InitiateMpesa_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		req         MpesaRequest
		expectedErr error
	}{
		{"missing phone", MpesaRequest{Amount: 100, OrderID: "ORD-1"}, ErrMissingFields},
		{"missing amount", MpesaRequest{PhoneNumber: "0712345678", OrderID: "ORD-1"}, ErrMissingFields},
		{"negative amount", MpesaRequest{PhoneNumber: "0712345678", Amount: -5, OrderID: "ORD-1"}, ErrMissingFields},
		{"missing order", MpesaRequest{PhoneNumber: "0712345678", Amount: 100}, ErrMissingFields},
		{"bad phone", MpesaRequest{PhoneNumber: "12345", Amount: 100, OrderID: "ORD-1"}, ErrInvalidPhone},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			s := newTestService(publisher)

			// when
			p, err := s.InitiateMpesa(context.Background(), tc.req)

			// then
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.expectedErr)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestService_MpesaStatus(t *testing.T) {
	s := newTestService(&mockPublisher{})

	_, err := s.MpesaStatus(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingReference)

	status, err := s.MpesaStatus(context.Background(), "", "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status.Status)
	assert.Equal(t, "ORD-1", status.OrderID)
}

func TestService_Get(t *testing.T) {
	s := newTestService(&mockPublisher{})

	p, err := s.Get(context.Background(), "MPESA-1-ABC")

	require.NoError(t, err)
	assert.Equal(t, "MPESA-1-ABC", p.ID)
	assert.Equal(t, StatusPending, p.Status)
	assert.Zero(t, p.Amount)
	assert.Empty(t, p.OrderID)
}
