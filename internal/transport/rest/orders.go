package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/topnotch/storefront/internal/cart"
	"github.com/topnotch/storefront/internal/order"
	ordererrors "github.com/topnotch/storefront/internal/order/errors"
	"github.com/topnotch/storefront/pkg/web"
)

type checkoutRequest struct {
	Customer      *order.Customer `json:"customer"`
	PaymentMethod string          `json:"paymentMethod"`
}

// CreateOrder accepts an order submitted by the client.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto order.OrderCreateDto
	if !web.DecodeJSON(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create order", "items", len(dto.Items))
	created, err := h.orders.Create(r.Context(), dto)
	if err != nil {
		h.respondOrderError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Order created successfully", slog.String("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, web.Envelope{Success: true, Data: created, Message: "Order created successfully"})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.orders.List(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving order list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if list == nil {
		list = []order.OrderDto{}
	}
	web.RespondJSON(w, mLogger, http.StatusOK, web.Envelope{Success: true, Data: list, Message: "Orders endpoint"})
}

// Checkout places an order for the current cart and empties the cart once the order is accepted.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req checkoutRequest
	if !web.DecodeJSON(w, r, mLogger, &req) {
		return
	}
	store := cart.FromContext(r.Context())
	lines := store.Snapshot().Lines()
	items := make([]order.OrderItemDto, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.OrderItemDto{
			Slug:     l.Product.Slug,
			Title:    l.Product.Title,
			Price:    l.Product.Price,
			Quantity: l.Quantity,
		})
	}
	created, err := h.orders.Create(r.Context(), order.OrderCreateDto{
		Items:         items,
		Customer:      req.Customer,
		Total:         store.TotalPrice(),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.respondOrderError(w, r, mLogger, err)
		return
	}
	store.Clear()
	mLogger.InfoContext(r.Context(), "Checkout completed", slog.String("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, web.Envelope{Success: true, Data: created, Message: "Order created successfully"})
}

func (h *Handler) respondOrderError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrNoItems):
		web.RespondError(w, mLogger, http.StatusBadRequest, "Order must contain at least one item")
	case errors.Is(err, ordererrors.ErrInvalidItem):
		web.RespondError(w, mLogger, http.StatusBadRequest, "Order contains an invalid item")
	case errors.Is(err, ordererrors.ErrInvalidTotal):
		web.RespondError(w, mLogger, http.StatusBadRequest, "Order total is invalid")
	case errors.Is(err, ordererrors.ErrCustomerRequired):
		web.RespondError(w, mLogger, http.StatusBadRequest, "Customer information is required")
	default:
		mLogger.ErrorContext(r.Context(), "Error creating order", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create order")
	}
}
