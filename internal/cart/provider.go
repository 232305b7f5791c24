package cart

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
)

// HeaderCartCount carries the total item count on every response served with a cart.
const HeaderCartCount = "X-Cart-Count"

var ErrNoProvider = errors.New("cart store requested outside of a cart provider")

type storeKey struct{}

// WithStore returns a context carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store installed by Provider. It panics with ErrNoProvider
// when the request never passed through a provider.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		panic(ErrNoProvider)
	}
	return s
}

// ObserverFactory builds an observer bound to one response.
type ObserverFactory func(w http.ResponseWriter, r *http.Request) Observer

// CountHeader keeps the X-Cart-Count response header in line with the cart.
func CountHeader(w http.ResponseWriter, _ *http.Request) Observer {
	return func(c Cart) {
		w.Header().Set(HeaderCartCount, strconv.Itoa(c.TotalItemCount()))
	}
}

// ProviderConfig configures Provider.
type ProviderConfig struct {
	Catalog      Catalog
	Logger       *slog.Logger
	SecureCookie bool
	Observers    []ObserverFactory
}

// Provider creates a store for every request, backed by the request's cart cookie,
// subscribes the configured observers and initializes it before calling next.
func Provider(cfg ProviderConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := cfg.Logger.With("request_id", middleware.GetReqID(r.Context()))
			store := NewStore(cfg.Catalog, NewCookieStorage(w, r, cfg.SecureCookie), logger)
			for _, factory := range cfg.Observers {
				store.Subscribe(factory(w, r))
			}
			store.Initialize()
			next.ServeHTTP(w, r.WithContext(WithStore(r.Context(), store)))
		})
	}
}
