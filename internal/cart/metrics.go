package cart

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// MetricsObserver returns an observer factory that records the item count of every cart state it sees.
func MetricsObserver() ObserverFactory {
	meter := otel.Meter("storefront/cart")
	items, err := meter.Int64Histogram("cart_items",
		metric.WithDescription("Total item count of a cart after a state change"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 8, 13, 21),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create cart_items histogram: %v", err))
	}
	return func(_ http.ResponseWriter, r *http.Request) Observer {
		ctx := context.WithoutCancel(r.Context())
		return func(c Cart) {
			items.Record(ctx, int64(c.TotalItemCount()))
		}
	}
}
