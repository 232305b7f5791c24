// Package rest provides the HTTP handlers of the storefront API.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/topnotch/storefront/internal/admin"
	"github.com/topnotch/storefront/internal/catalog"
	"github.com/topnotch/storefront/internal/health"
	"github.com/topnotch/storefront/internal/order"
	"github.com/topnotch/storefront/internal/payment"
	"github.com/topnotch/storefront/internal/youtube"
)

// VideoFetcher lists the channel videos; it never fails.
type VideoFetcher interface {
	Fetch(ctx context.Context) youtube.Result
}

// HealthChecker produces a point in time health report.
type HealthChecker interface {
	Check() health.Report
}

// Services groups the dependencies of Handler. Cart installs the per request cart store
// for the cart and checkout routes.
type Services struct {
	Catalog  catalog.Service
	Orders   order.OrderService
	Payments payment.PaymentService
	Videos   VideoFetcher
	Admin    admin.Service
	Health   HealthChecker
	Cart     func(http.Handler) http.Handler
}

type Handler struct {
	catalog  catalog.Service
	orders   order.OrderService
	payments payment.PaymentService
	videos   VideoFetcher
	admin    admin.Service
	health   HealthChecker
	cart     func(http.Handler) http.Handler
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the provided services.
func NewHandler(s Services, logger *slog.Logger) *Handler {
	cartMW := s.Cart
	if cartMW == nil {
		cartMW = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{
		catalog:  s.Catalog,
		orders:   s.Orders,
		payments: s.Payments,
		videos:   s.Videos,
		admin:    s.Admin,
		health:   s.Health,
		cart:     cartMW,
		validate: validator.New(),

		logger: logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the storefront API.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/books", h.ListBooks)
		r.Get("/books/{id}", h.GetBook)
		r.Get("/blog", h.ListPosts)
		r.Get("/blog/{slug}", h.GetPost)
		r.Get("/videos", h.ListVideos)
		r.Get("/youtube", h.ListChannelVideos)
		r.Get("/health", h.Health)
		r.Get("/routes", h.ListRoutes)

		r.Group(func(r chi.Router) {
			r.Use(h.cart)
			r.Get("/cart", h.GetCart)
			r.Delete("/cart", h.ClearCart)
			r.Post("/cart/items", h.AddCartItem)
			r.Put("/cart/items/{slug}", h.SetCartItemQuantity)
			r.Delete("/cart/items/{slug}", h.RemoveCartItem)
			r.Post("/checkout", h.Checkout)
		})

		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)

		r.Get("/payments/mpesa", h.MpesaStatus)
		r.Post("/payments/mpesa", h.InitiateMpesa)
		r.Get("/payments/{id}", h.GetPayment)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/books", h.AdminBooks)
			r.Get("/orders", h.AdminOrders)
			r.Get("/blog", h.AdminPosts)
			r.Get("/dashboard", h.AdminDashboard)
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
