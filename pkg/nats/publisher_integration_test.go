package nats

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/messaging/events"
)

// skipIntegrationTests is the environment variable that controls whether to skip integration tests.
const skipIntegrationTests = "STOREFRONT_SKIP_INTEGRATION_TESTS"
const natsImg = "nats:2.11.6-alpine"

// PublisherSuite publishes storefront events into a JetStream server running in a container.
type PublisherSuite struct {
	suite.Suite
	ctx           context.Context
	natsContainer *tcnats.NATSContainer
	nc            *nats.Conn
	js            jetstream.JetStream
}

func TestPublisherIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(PublisherSuite))
}

func (s *PublisherSuite) SetupSuite() {
	s.ctx = context.Background()

	var err error
	s.natsContainer, err = tcnats.Run(s.ctx, natsImg)
	s.Require().NoError(err, "Failed to run NATS container")

	url, err := s.natsContainer.ConnectionString(s.ctx)
	s.Require().NoError(err)
	s.nc, err = NewClient(url, 5*time.Second)
	s.Require().NoError(err)
	s.js, err = NewJetStreamContext(s.nc)
	s.Require().NoError(err)
}

func (s *PublisherSuite) TearDownSuite() {
	if s.nc != nil {
		s.nc.Close()
	}
	if err := testcontainers.TerminateContainer(s.natsContainer); err != nil {
		s.T().Logf("Failed to terminate NATS container: %v", err)
	}
}

func (s *PublisherSuite) TestPublishStoresEventsInStream() {
	// given
	stream := "STOREFRONT-" + uuid.NewString()[:8]
	s.Require().NoError(EnsureStream(s.ctx, s.js, stream))
	publisher := NewNatsPublisher(s.js, stream)

	// when
	s.Require().NoError(publisher.Publish(s.ctx, events.OrderCreatedEvent{OrderID: "ORD-1-ABCDEFGHI", ItemCount: 2, Total: 1770}))
	s.Require().NoError(publisher.Publish(s.ctx, events.PaymentInitiatedEvent{PaymentID: "MPESA-1-ABCDEFGHI", OrderID: "ORD-1-ABCDEFGHI"}))

	// then
	str, err := s.js.Stream(s.ctx, stream)
	s.Require().NoError(err)
	info, err := str.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), info.State.Msgs)

	msg, err := str.GetLastMsgForSubject(s.ctx, messaging.OrdersCreatedSubject)
	s.Require().NoError(err)
	s.Contains(string(msg.Data), "ORD-1-ABCDEFGHI")
}

func (s *PublisherSuite) TestPublishToMissingStreamFails() {
	// given
	publisher := NewNatsPublisher(s.js, "MISSING-"+uuid.NewString()[:8])
	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()

	// when
	err := publisher.Publish(ctx, events.OrderCreatedEvent{OrderID: "ORD-2"})

	// then
	s.Error(err)
}
