// Package app wires the storefront services into HTTP and gRPC servers.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/topnotch/storefront/internal/admin"
	"github.com/topnotch/storefront/internal/cart"
	"github.com/topnotch/storefront/internal/catalog"
	"github.com/topnotch/storefront/internal/config"
	"github.com/topnotch/storefront/internal/health"
	"github.com/topnotch/storefront/internal/order"
	"github.com/topnotch/storefront/internal/payment"
	"github.com/topnotch/storefront/internal/transport/rest"
	"github.com/topnotch/storefront/internal/youtube"
	"github.com/topnotch/storefront/pkg/messaging"
	"github.com/topnotch/storefront/pkg/server"
	"github.com/topnotch/storefront/pkg/web"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Dependencies struct {
	Catalog     *catalog.Catalog
	Orders      order.OrderService
	Payments    payment.PaymentService
	Videos      rest.VideoFetcher
	Admin       admin.Service
	Health      rest.HealthChecker
	RateLimiter *web.RateLimiter
	Metrics     http.Handler
	Logger      *slog.Logger
}

// SetupDependencies builds the services. The rate limiter cleanup stops when ctx is done.
// metrics may be nil, in which case no metrics endpoint is served.
func SetupDependencies(ctx context.Context, cfg *config.Config, publisher messaging.Publisher, metrics http.Handler, logger *slog.Logger) (*Dependencies, error) {
	cat := catalog.Default()
	videos, err := youtube.New(ctx, cfg.YouTube, youtube.StaticVideos(cat.Videos()), logger)
	if err != nil {
		return nil, err
	}
	var limiter *web.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = web.NewRateLimiter(ctx, cfg.RateLimit, logger)
	}
	return &Dependencies{
		Catalog:     cat,
		Orders:      order.NewService(publisher, logger),
		Payments:    payment.NewService(publisher, logger),
		Videos:      videos,
		Admin:       admin.Default(),
		Health:      health.NewReporter(cfg.App.Env, cfg.App.Version),
		RateLimiter: limiter,
		Metrics:     metrics,
		Logger:      logger,
	}, nil
}

// SetupHttpHandler initializes the router, middleware and routes of the storefront.
// Used by tests to exercise the full HTTP stack.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	production := cfg.App.IsProduction()

	mux := server.NewChiRouter(deps.Logger)
	mux.Use(web.SecurityHeaders(cfg.Security, production))
	mux.Use(web.CORS(cfg.CORS, production, deps.Logger))
	if deps.RateLimiter != nil {
		mux.Use(deps.RateLimiter.Middleware(exemptFromRateLimit(cfg.Metrics.Path)))
	}
	if deps.Metrics != nil && cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, deps.Metrics)
	}
	wireRoutes(mux, deps, production)

	return otelhttp.NewHandler(mux, cfg.App.Name)
}

// wireRoutes sets up the HTTP routes of the storefront.
func wireRoutes(mux *chi.Mux, deps *Dependencies, production bool) {
	cartProvider := cart.Provider(cart.ProviderConfig{
		Catalog:      deps.Catalog,
		Logger:       deps.Logger,
		SecureCookie: production,
		Observers:    []cart.ObserverFactory{cart.CountHeader, cart.MetricsObserver()},
	})
	handler := rest.NewHandler(rest.Services{
		Catalog:  deps.Catalog,
		Orders:   deps.Orders,
		Payments: deps.Payments,
		Videos:   deps.Videos,
		Admin:    deps.Admin,
		Health:   deps.Health,
		Cart:     cartProvider,
	}, deps.Logger)
	handler.RegisterRoutes(mux)
}

// exemptFromRateLimit skips health probes and metric scrapes.
func exemptFromRateLimit(metricsPath string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		p := r.URL.Path
		return p == "/healthz" || p == metricsPath || strings.HasPrefix(p, "/api/v1/health")
	}
}

// SetupHttpServer creates and configures the HTTP server of the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
		ErrorLog:       deps.Logger,
	}

	return server.NewHTTPServer(httpCfg, handler)
}

// SetupGrpcServer creates the gRPC server that exposes the standard health service.
func SetupGrpcServer(cfg *config.Config, logger *slog.Logger) (*grpc.Server, *grpchealth.Server) {
	hs := grpchealth.NewServer()
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return server.NewGRPCServer(logger, cfg.GRPC.ReflectionEnabled, server.WithHealth(hs)), hs
}
